package networth

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every input-validation failure returned by
// this package. Test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrHorizonTooShort is returned by Analyze when the projection horizon does
// not reach the last net-worth checkpoint.
var ErrHorizonTooShort = fmt.Errorf("%w: horizon too short", ErrInvalidInput)

// ErrNoResults is returned by Synthesize when it is given nothing to fold.
var ErrNoResults = fmt.Errorf("%w: no analysis results", ErrInvalidInput)

// invalidf returns an error wrapping ErrInvalidInput.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
