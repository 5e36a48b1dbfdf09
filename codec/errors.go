package codec

import (
	"errors"
	"fmt"

	"github.com/geange/dfamin"
)

var (
	// ErrSourceUnavailable is returned when a DFA document cannot be read or written.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUnknownFormat is returned for format names or file extensions with no codec.
	ErrUnknownFormat = errors.New("unknown format")
)

// ParseError reports a document that could not be decoded into a definition.
// It matches dfamin.ErrInvalidAutomaton.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: malformed %s document: %v", dfamin.ErrInvalidAutomaton, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == dfamin.ErrInvalidAutomaton
}
