package errors

import (
	"encoding/json"
	"net/http"

	apperrors "voice2text/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindMisconfigured ErrorKind = "service_misconfigured"
	KindInternal      ErrorKind = "internal"
)

// APIError is an error ready to be written to the client.
//
// Client errors serialize as {"detail": "..."}; everything else as
// {"error": "..."}.
type APIError struct {
	Kind      ErrorKind
	Message   string
	RequestID string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MarshalJSON writes the response body shape expected by clients.
func (e *APIError) MarshalJSON() ([]byte, error) {
	if e.Kind == KindBadRequest {
		return json.Marshal(map[string]string{"detail": e.Message})
	}
	return json.Marshal(map[string]string{"error": e.Message})
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromError converts a service error into an APIError. The full error message
// is passed through to the caller.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindBadRequest:
		return &APIError{Kind: KindBadRequest, Message: err.Error()}
	case apperrors.KindServiceMisconfigured:
		return &APIError{Kind: KindMisconfigured, Message: err.Error()}
	default:
		return &APIError{Kind: KindInternal, Message: err.Error()}
	}
}
