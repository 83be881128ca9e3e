package utils

import "net/http"

// APIError is an error carrying the HTTP status it should surface as.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates an error that surfaces with the given HTTP status.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// ErrNotFound creates a 404 error with the given message.
func ErrNotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

// ErrConflict creates a 409 error with the given message.
func ErrConflict(message string) *APIError {
	return NewAPIError(http.StatusConflict, message)
}

// ErrUnauthorized creates a 401 error with the given message.
func ErrUnauthorized(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message)
}
