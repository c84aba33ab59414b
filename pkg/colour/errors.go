package colour

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDescriptor is returned when a descriptor is nil or does not
	// match any recognised colour model.
	ErrInvalidDescriptor = errors.New("invalid colour descriptor")

	// ErrUnparseable is returned when a CSS string matches none of the
	// supported grammars or named colours.
	ErrUnparseable = errors.New("unparseable CSS colour string")
)

// ParseError reports the string that failed to parse.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not a valid CSS colour string", e.Input)
}

// Unwrap allows errors.Is(err, ErrUnparseable).
func (e *ParseError) Unwrap() error {
	return ErrUnparseable
}
