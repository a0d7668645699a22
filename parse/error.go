// SPDX-License-Identifier: MIT
package parse

import (
	"errors"
	"fmt"
)

type (
	// Error is the single error shape produced by the package's parsers.
	Error struct {
		// Context holds the offending text.
		Context string
		Message string

		// Line holds the last offending byte, or the cursor when the input ended early.
		Line int

		// Err holds one of the package's sentinel errors, possibly wrapping an underlying cause.
		Err error
	}
)

// Parsing errors.
var (
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")
	ErrInvalidValue    = errors.New("invalid value")

	ErrMoreThanOneField  = errors.New("more than one field")
	ErrSeparatorNotFound = errors.New("reached end without finding separator")

	ErrNoAlternative = errors.New("neither parser succeeded")

	ErrWrongSeparator = errors.New("wrong separator")
	ErrCellTooSmall   = errors.New("too small item in table")

	ErrPatternMismatch = errors.New("pattern mismatch")
	ErrPatternEnd      = errors.New("reached end of pattern")
	ErrPrematureEnd    = errors.New("premature end of input")
	ErrCaptureCount    = errors.New("not expected number of captured strings")
)

// newError instantiates an Error whose message is derived from err.
func newError(err error, context string, line int) *Error {
	return &Error{Context: context, Message: err.Error(), Line: line, Err: err}
}

// newErrorf instantiates an Error whose message details err.
func newErrorf(err error, context string, line int, format string, args ...any) *Error {
	return &Error{
		Context: context,
		Message: err.Error() + ", " + fmt.Sprintf(format, args...),
		Line:    line,
		Err:     err,
	}
}

func (e *Error) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Context)
}

// Unwrap obtains the underlying error.
func (e *Error) Unwrap() error { return e.Err }
