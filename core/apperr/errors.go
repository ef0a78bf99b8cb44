package apperr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// maxStackDepth bounds the frames recorded per error.
const maxStackDepth = 32

// Kind is the category of a failure.
type Kind uint8

const (
	// KindInternal is any failure that could not be classified.
	KindInternal Kind = iota
	// KindValidation is malformed or missing input.
	KindValidation
	// KindUnauthorized is a missing or rejected credential.
	KindUnauthorized
	// KindNotFound is a bucket or object that does not exist.
	KindNotFound
	// KindInvalidOperation is a caller-side precondition violation.
	KindInvalidOperation
	// KindBackend is a failure reported by, or on the way to, the storage backend.
	KindBackend
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindBackend:
		return "backend"
	default:
		return "internal"
	}
}

// Error is a failure carrying an explicit Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error

	// stack holds the program counters of the site that built the error.
	stack []uintptr
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message, stack: callers()}
}

// Wrap attaches a kind and message to err. It returns nil if err is nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err, stack: callers()}
}

// callers skips runtime.Callers, itself and the New/Wrap frame.
func callers() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// StackTrace formats the stack recorded where the innermost *Error of the
// chain was built. It reports false when no *Error carries a stack.
func StackTrace(err error) (string, bool) {
	var stack []uintptr
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ae, ok := e.(*Error); ok && len(ae.stack) > 0 {
			stack = ae.stack
		}
	}
	if len(stack) == 0 {
		return "", false
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(stack)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return sb.String(), true
}

// Validation creates a KindValidation error.
func Validation(message string) error {
	return New(KindValidation, message)
}

// Validationf creates a KindValidation error with a formatted message.
func Validationf(format string, args ...any) error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

// NotFound creates a KindNotFound error.
func NotFound(message string) error {
	return New(KindNotFound, message)
}

// NotFoundf creates a KindNotFound error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// InvalidOperation creates a KindInvalidOperation error.
func InvalidOperation(message string) error {
	return New(KindInvalidOperation, message)
}

// Backend wraps err as a KindBackend error.
func Backend(message string, err error) error {
	return Wrap(KindBackend, message, err)
}

// IsKind reports whether err classifies as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && Classify(err).Kind == kind
}

// kindOf returns the kind of the outermost *Error in the chain.
func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindInternal, false
}
