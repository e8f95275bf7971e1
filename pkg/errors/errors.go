// Package errors provides structured error handling for the sash library.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindArgument indicates an invalid argument to a widget operation.
	KindArgument
	// KindRange indicates a value outside its permitted range.
	KindRange
	// KindConstruct indicates a widget-construction protocol violation,
	// such as a frame that would transitively contain itself.
	KindConstruct
	// KindInvariant indicates an internal layout invariant violation.
	// Errors of this kind are raised by panic; they signal a library bug,
	// not a recoverable condition.
	KindInvariant
	// KindStyle indicates a malformed style sheet or style value.
	KindStyle
)

func (k ErrorKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindRange:
		return "range"
	case KindConstruct:
		return "construct"
	case KindInvariant:
		return "invariant"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the sash library.
type Error struct {
	// Op is the operation that failed (e.g., "widgets.Frame.Finish").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error wrapping a plain message.
func New(op string, kind ErrorKind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf("%s", msg)}
}

// Newf creates an Error wrapping a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap creates an Error wrapping an underlying error. Returns nil when err
// is nil so call sites can wrap unconditionally.
func Wrap(op string, kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err's chain holds an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}
