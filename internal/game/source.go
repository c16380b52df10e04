package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// LineSource yields one line of raw input per call. It is the only blocking
// point of a session.
type LineSource interface {
	ReadLine() (string, error)
}

// ReaderSource reads newline-terminated lines from an io.Reader.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps r. Typically os.Stdin.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// ReadLine returns the next line including its terminator. A trailing line
// without a terminator is returned once; the call after it reports ErrInputClosed.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read guess: %w", err)
}
