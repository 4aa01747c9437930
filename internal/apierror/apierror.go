// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error so callers can branch on it without
// string-matching messages.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindNotFound          Kind = "not_found"
	KindInsufficientStock Kind = "insufficient_stock"
	KindConflict          Kind = "conflict"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindInternal          Kind = "internal_error"
)

// Error is the canonical domain error carried from services up to handlers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// E builds a typed error.
func E(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Validation(msg string) *Error        { return E(KindValidation, msg) }
func NotFound(msg string) *Error          { return E(KindNotFound, msg) }
func InsufficientStock(msg string) *Error { return E(KindInsufficientStock, msg) }
func Conflict(msg string) *Error          { return E(KindConflict, msg) }
func Unauthorized(msg string) *Error      { return E(KindUnauthorized, msg) }
func Forbidden(msg string) *Error         { return E(KindForbidden, msg) }

// KindOf extracts the Kind of err; untyped errors map to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// Status maps an error to the HTTP status code its kind warrants.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientStock:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Kind   Kind   `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// From converts any error into the response envelope. Untyped errors come out
// as a generic internal error so DB messages never reach clients.
func From(err error) *APIError {
	var e *Error
	if errors.As(err, &e) {
		return &APIError{Kind: e.Kind, Detail: e.Message}
	}
	return &APIError{Kind: KindInternal, Detail: "internal server error"}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Kind   Kind              `json:"kind"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Kind: KindValidation, Detail: "validation failed", Fields: fields}
}
