package game

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSource_Lines(t *testing.T) {
	src := NewReaderSource(strings.NewReader("1\n  2  \r\n3"))

	for _, want := range []string{"1\n", "  2  \r\n", "3"} {
		got, err := src.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := src.ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReaderSource_Empty(t *testing.T) {
	_, err := NewReaderSource(strings.NewReader("")).ReadLine()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReaderSource_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewReaderSource(iotest.ErrReader(boom)).ReadLine()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}
