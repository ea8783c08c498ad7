package model

import "errors"

// ErrNotFound covers both rows that do not exist and rows the caller does
// not own. Stores and services must never let the two look different to a
// client, so they share one sentinel.
var ErrNotFound = errors.New("not found")

// ErrUnauthenticated means no verified caller identity was present.
var ErrUnauthenticated = errors.New("unauthenticated")

// Stable error codes carried in error response bodies.
const (
	CodeMissingField     = "missing_field"
	CodeEmptyContent     = "empty_content"
	CodeContentTooLong   = "content_too_long"
	CodeMissingParameter = "missing_parameter"
	CodeInvalidField     = "invalid_field"
)

// ValidationError is a 400-class failure detected before any store access.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
