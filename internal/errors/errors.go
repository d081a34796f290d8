package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrModelNotFound is returned when a model is not found.
	ErrModelNotFound = errors.New("model not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrForbidden is returned when an authenticated caller is not entitled to the resource.
	ErrForbidden = errors.New("forbidden access")
	// ErrUnauthorized is returned when no valid identity is present.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrUpstream is returned when the store or the identity provider rejects a call.
	ErrUpstream = errors.New("upstream failure")
)

// ErrorResponse is the error envelope returned on every failed request.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds the error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: true, Message: message}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrModelNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPurchaseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error())
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusBadGateway, ErrUpstream.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
