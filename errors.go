package hexrange

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedRange is returned when a range string has no hyphen separating its bounds.
var ErrMalformedRange = errors.New("malformed range: expected <start>-<end>")

// A ParseError is returned when a token is not a valid hexadecimal number.
type ParseError struct {
	// Field names the token that failed: "start", "end" or "probe".
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
