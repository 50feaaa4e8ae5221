package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure so the boundary layer can map it to a status code.
type Kind string

const (
	KindInternal             Kind = "internal"
	KindBadRequest           Kind = "bad_request"
	KindServiceMisconfigured Kind = "service_misconfigured"
	KindExternalTool         Kind = "external_tool_failure"
	KindTranscriptionAPI     Kind = "transcription_api_failure"
	KindIO                   Kind = "io_failure"
)

// Common error types
var (
	// Request errors
	ErrNoFile = New(KindBadRequest, "no file uploaded")

	// Configuration errors
	ErrMissingAPIKey   = New(KindServiceMisconfigured, "transcription API key is not configured")
	ErrUnknownProvider = New(KindServiceMisconfigured, "unknown transcription provider")

	// Media tool errors
	ErrInvalidDuration = New(KindExternalTool, "invalid media duration")
)

// Error represents a standardized error
type Error struct {
	kind    Kind
	message string
	cause   error
}

// New creates a new error
func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Newf creates a new formatted error
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Kind returns the failure class
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// KindOf returns the kind of the outermost *Error in err's chain.
// Errors that carry no kind are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
