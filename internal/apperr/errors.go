// Package apperr defines the error taxonomy surfaced by the HTTP layer.
package apperr

import (
	"errors"
	"net/http"
)

// FieldError describes one failed constraint, addressed by its JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for missing or malformed input.
type ValidationError struct {
	Message string
	Fields  []FieldError
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidation(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError is returned when a named resource (e.g. a section) does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(msg string) *NotFoundError { return &NotFoundError{Message: msg} }

// StorageError wraps a persistence failure. Message is safe to show to clients.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorage(msg string, err error) *StorageError { return &StorageError{Message: msg, Err: err} }

// UploadError is returned when an uploaded file is rejected.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string { return e.Message }

func NewUpload(msg string) *UploadError { return &UploadError{Message: msg} }

// AuthError is returned for missing (401) or rejected (403) credentials.
type AuthError struct {
	Message   string
	Forbidden bool
}

func (e *AuthError) Error() string { return e.Message }

func NewUnauthorized(msg string) *AuthError { return &AuthError{Message: msg} }
func NewForbidden(msg string) *AuthError    { return &AuthError{Message: msg, Forbidden: true} }

// HTTPStatus returns the status code for err, walking wrapped errors.
func HTTPStatus(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	var ue *UploadError
	var ae *AuthError
	switch {
	case errors.As(err, &ve), errors.As(err, &ue):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ae):
		if ae.Forbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message for err. Unknown errors map
// to a generic message so internal details do not leak.
func PublicMessage(err error) string {
	var ve *ValidationError
	var nf *NotFoundError
	var se *StorageError
	var ue *UploadError
	var ae *AuthError
	switch {
	case errors.As(err, &ve):
		if ve.Err != nil && len(ve.Fields) == 0 {
			return ve.Error()
		}
		return ve.Message
	case errors.As(err, &nf):
		return nf.Message
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &ue):
		return ue.Message
	case errors.As(err, &ae):
		return ae.Message
	default:
		return "Internal server error"
	}
}
