// Package apperr defines the error taxonomy shared by the engagement engine.
// Handlers map codes to HTTP statuses in one place; services never touch
// status codes directly.
package apperr

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeUnauthenticated Code = iota + 1
	CodeForbidden
	CodeNotFound
	CodeValidation
	CodeConflict
	CodeInternal
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthenticated(msg string) error { return &Error{Code: CodeUnauthenticated, Message: msg} }
func Forbidden(msg string) error       { return &Error{Code: CodeForbidden, Message: msg} }
func NotFound(msg string) error        { return &Error{Code: CodeNotFound, Message: msg} }
func Validation(msg string) error      { return &Error{Code: CodeValidation, Message: msg} }
func Conflict(msg string) error        { return &Error{Code: CodeConflict, Message: msg} }

// CodeOf returns the taxonomy code, or CodeInternal for untyped errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps a taxonomy code to its boundary status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
