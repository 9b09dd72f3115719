package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status code and a client-safe message.
// Key is a stable code, also used as the translation key for Message.
// Err holds the underlying cause for logging; it is never rendered.
type HTTPError struct {
	Code    int
	Key     string
	Message string
	Details map[string][]string
	Err     error
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key, message string) HTTPError {
	return HTTPError{Code: code, Key: key, Message: message}
}

func (e HTTPError) Error() string {
	msg := e.PublicMessage()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// PublicMessage returns the message safe to show to clients.
func (e HTTPError) PublicMessage() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Key != "":
		return e.Key
	default:
		return http.StatusText(e.Code)
	}
}

// WithCause returns a copy of e wrapping err.
func (e HTTPError) WithCause(err error) HTTPError {
	e.Err = err
	return e
}

// WithDetails returns a copy of e carrying per-field details.
func (e HTTPError) WithDetails(details map[string][]string) HTTPError {
	e.Details = details
	return e
}

// Common errors. Use WithCause to attach the underlying error.
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request", Message: "Invalid request."}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large", Message: "Request is too large."}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type", Message: "Unsupported media type."}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error", Message: "Server error."}
)
