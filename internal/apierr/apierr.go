package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation marks input that fails before any storage access.
func Validation(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// Reference marks a supplied foreign id that does not resolve.
func Reference(code string, err error) *Error {
	return New(http.StatusUnprocessableEntity, code, err)
}

// NotFound marks a lookup, update or delete target that does not exist.
func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

// Storage marks an underlying store failure, reported generically.
func Storage(code string, err error) *Error {
	return New(http.StatusInternalServerError, code, err)
}

// From extracts an *Error from err's chain, or wraps err as a generic
// storage failure.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Storage("internal_error", err)
}
