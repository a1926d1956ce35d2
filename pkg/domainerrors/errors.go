// Package domainerrors defines the coded errors shared between the onboarding
// services and the HTTP layer. Handlers translate codes to status codes and
// JSON envelopes; services never reference HTTP directly.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a failure for transport mapping and logging.
type Code string

const (
	CodeBadRequest       Code = "bad_request"
	CodeNotFound         Code = "not_found"
	CodeValidation       Code = "validation_failed"
	CodeStoreUnavailable Code = "store_unavailable"
	CodeInternal         Code = "internal_error"
)

// FieldError names a single field that violated its rule. Validation failures
// carry every violated field so a client can surface them all at once.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the concrete coded error. Fields is populated only for
// CodeValidation.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New builds a coded error without field details.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidation builds a validation error carrying the full field error list.
func NewValidation(message string, fields []FieldError) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err is a coded error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// FieldsOf extracts the field error list from err, if any.
func FieldsOf(err error) []FieldError {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
