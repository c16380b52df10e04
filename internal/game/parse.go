package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGuess trims surrounding whitespace (including the line terminator) and
// reads the rest as an unsigned 32-bit decimal. Any failure wraps ErrMalformedGuess.
func ParseGuess(raw string) (uint32, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty input", ErrMalformedGuess)
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedGuess, text)
	}
	return uint32(n), nil
}
