// Package errors defines the error kinds surfaced by countdown and maps them
// to process exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for reporting and exit status.
type Kind string

const (
	// KindInvalidArgument marks bad command-line input.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	// KindValidation marks an event that fails its invariants before persistence.
	KindValidation Kind = "VALIDATION"
	// KindStorage marks an unreadable or unwritable event file.
	KindStorage Kind = "STORAGE"
	// KindFormat marks event file contents that cannot be parsed.
	KindFormat Kind = "FORMAT"
)

// Sentinels for errors.Is checks against a kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrStorage         = &Error{Kind: KindStorage}
	ErrFormat          = &Error{Kind: KindFormat}
)

// Error is a classified error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Cause.Error()
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind that wraps cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of the first classified error in err's chain, or
// the empty kind when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for invalid
// arguments and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if KindOf(err) == KindInvalidArgument {
		return 2
	}
	return 1
}
