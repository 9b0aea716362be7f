package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Err        error // underlying cause, never shown to the client
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) Unwrap() error {
	return e.Err
}

func NotFound(what string) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf("%s not found", what), StatusCode: http.StatusNotFound}
}

func Validation(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

func Forbidden(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusForbidden}
}

// StorageUnavailable marks connection and timeout failures of the persistence layer.
// It is sent as 503 so clients can retry it, unlike a plain 500.
func StorageUnavailable(err error) error {
	return &ErrorWithStatusCode{Message: "Storage unavailable", StatusCode: http.StatusServiceUnavailable, Err: err}
}

// StatusCode returns the http status attached to err, 500 otherwise.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
