package philox

import (
	"fmt"

	xerrors "github.com/go-philox/philox/errors"
)

// ParseError reports a failure to parse an Engine's serialized text form.
// It wraps the underlying cause via this module's forked errors package so
// that xerrors.Is/xerrors.As see through it and %+v formatting includes a
// call-stack frame.
type ParseError struct {
	Field string // which state field failed to parse ("header", "n", "r", "w", "i", "x", "k", "y")
	cause error
}

func newParseError(field string, cause error) error {
	return &ParseError{Field: field, cause: xerrors.Annotate(cause, fmt.Sprintf("philox: parsing %s", field))}
}

func (e *ParseError) Error() string { return e.cause.Error() }

func (e *ParseError) Unwrap() error { return e.cause }

func (e *ParseError) FormatError(p xerrors.Printer) (next error) {
	p.Print("philox: malformed engine text encoding")
	return e.cause
}

func (e *ParseError) Format(s fmt.State, verb rune) {
	xerrors.Format(e, s, verb)
}
