package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a catalog failure so the transport layer can pick a
// status code without inspecting message text.
type ErrorKind string

const (
	KindValidation ErrorKind = "ValidationError"
	KindNotFound   ErrorKind = "NotFound"
	KindConflict   ErrorKind = "Conflict"
	KindInternal   ErrorKind = "InternalError"
)

// Error is a classified catalog error with a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the classification of err. Anything that is not a catalog
// *Error is reported as internal.
func KindOf(err error) ErrorKind {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Kind
	}
	return KindInternal
}

// StatusCode maps a catalog error onto its HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
