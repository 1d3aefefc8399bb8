package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced user, post or comment does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden means the resource exists but the principal does not own it
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a malformed or conflicting field. No state is
// mutated when one is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Validation builds a field-level validation error
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BlobError marks a blob store failure so it is never conflated with a
// validation failure
type BlobError struct {
	Op  string
	Key string
	Err error
}

func (e *BlobError) Error() string {
	return fmt.Sprintf("blob %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *BlobError) Unwrap() error {
	return e.Err
}

// IsBlob reports whether err is (or wraps) a BlobError
func IsBlob(err error) bool {
	var be *BlobError
	return errors.As(err, &be)
}
