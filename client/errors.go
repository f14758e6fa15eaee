package client

import "net/http"

// ErrorType classifies an API failure for the caller's rendering logic.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeServer       ErrorType = "SERVER_ERROR"
	ErrorTypeNetwork      ErrorType = "NETWORK_ERROR"
	ErrorTypeUnknown      ErrorType = "UNKNOWN"
)

// APIError is a classified failure. Network errors carry no status code:
// no response was received at all.
type APIError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Err        error // underlying transport failure, set for network errors
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func classifyStatus(status int) ErrorType {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrorTypeValidation
	case http.StatusUnauthorized:
		return ErrorTypeUnauthorized
	case http.StatusForbidden:
		return ErrorTypeForbidden
	case http.StatusNotFound:
		return ErrorTypeNotFound
	case http.StatusInternalServerError:
		return ErrorTypeServer
	}
	return ErrorTypeUnknown
}

func networkError(err error) *APIError {
	return &APIError{
		Type:    ErrorTypeNetwork,
		Message: "Connection error with server. Check your internet connection.",
		Err:     err,
	}
}
