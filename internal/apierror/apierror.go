// Package apierror defines the error taxonomy shared by every service and
// handler. All 4xx/5xx responses go through this package so clients always
// receive a status code plus a short {"message": ...} envelope, never a raw
// driver error or a stack trace.
package apierror

import (
	"errors"
	"net/http"
)

// Error is a service-level failure with an HTTP status already decided.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// NotFound: lookup by key yielded nothing (404).
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Validation: missing/empty required field or malformed value (400).
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized: credential mismatch (401).
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Conflict: store-level constraint violation surfaced to the caller (409).
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Internal: anything we do not want to explain to the client (500).
func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}

// Status extracts the HTTP status from err, defaulting to 500 for errors
// that did not originate in this package.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
