package integrity

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for the write pipeline. Handlers map these onto HTTP
// statuses; anything else coming out of a commit is a store failure.
const (
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeUniqueViolation   = "UNIQUE_VIOLATION"
)

// Error is the failure type produced by the write pipeline.
type Error struct {
	Code    string // one of the Code* constants
	Message string // human-readable message
	RefKind string // failing reference kind, set for REFERENCE_NOT_FOUND
	RefID   string // failing reference id, set for REFERENCE_NOT_FOUND
	Err     error  // underlying error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewReferenceNotFound builds the error for a declared foreign key that
// does not resolve, naming the failing kind and id.
func NewReferenceNotFound(refKind, refID string) *Error {
	return &Error{
		Code:    CodeReferenceNotFound,
		Message: fmt.Sprintf("%s not found: %s", refKind, refID),
		RefKind: refKind,
		RefID:   refID,
	}
}

// NewValidationFailed builds the error for malformed input reaching the
// engine, e.g. an empty name when derivation is attempted.
func NewValidationFailed(reason string) *Error {
	return &Error{
		Code:    CodeValidationFailed,
		Message: reason,
	}
}

// NewUniqueViolation wraps a storage-layer duplicate rejection for the
// given field. Duplicate-key races are surfaced, never retried; the
// caller owns re-derivation from fresh input.
func NewUniqueViolation(field string, err error) *Error {
	return &Error{
		Code:    CodeUniqueViolation,
		Message: fmt.Sprintf("%s already exists", field),
		Err:     err,
	}
}

// IsReferenceNotFound reports whether err is a REFERENCE_NOT_FOUND
// pipeline error.
func IsReferenceNotFound(err error) bool {
	var ie *Error
	return errors.As(err, &ie) && ie.Code == CodeReferenceNotFound
}

// IsUniqueViolation reports whether err is a UNIQUE_VIOLATION pipeline
// error.
func IsUniqueViolation(err error) bool {
	var ie *Error
	return errors.As(err, &ie) && ie.Code == CodeUniqueViolation
}

// IsValidationFailed reports whether err is a VALIDATION_FAILED
// pipeline error.
func IsValidationFailed(err error) bool {
	var ie *Error
	return errors.As(err, &ie) && ie.Code == CodeValidationFailed
}

// MapToHTTP translates a pipeline error into (status, message, code)
// for the response envelope. Unknown errors map to 500.
func MapToHTTP(err error) (int, string, string) {
	var ie *Error
	if !errors.As(err, &ie) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
	switch ie.Code {
	case CodeReferenceNotFound:
		return http.StatusNotFound, ie.Message, ie.Code
	case CodeUniqueViolation:
		return http.StatusConflict, ie.Message, ie.Code
	case CodeValidationFailed:
		return http.StatusBadRequest, ie.Message, ie.Code
	default:
		return http.StatusInternalServerError, ie.Message, ie.Code
	}
}
