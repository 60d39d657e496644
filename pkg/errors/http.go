package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status, defaulting to 400.
func (e *HTTPError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusBadRequest
	}
	return e.Code
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewHTTPErrorf creates an HTTPError with a formatted message.
func NewHTTPErrorf(code int, format string, args ...any) *HTTPError {
	return &HTTPError{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
)

// AsHTTPError unwraps err into an *HTTPError when it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he, true
	}
	return nil, false
}
