package game

import "errors"

var (
	// ErrMalformedGuess marks input that is not an unsigned integer.
	// The caller re-prompts; the session keeps going.
	ErrMalformedGuess = errors.New("malformed guess")

	// ErrInputClosed is returned when the line source has no more input.
	ErrInputClosed = errors.New("input closed")

	// ErrSessionOver is returned by Submit once the target has been matched.
	ErrSessionOver = errors.New("session already matched")

	// ErrInvalidRange is returned for a range that cannot produce a target.
	ErrInvalidRange = errors.New("invalid range")
)

// IsRecoverable reports whether err should lead to a re-prompt rather than
// aborting the session.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrMalformedGuess)
}
