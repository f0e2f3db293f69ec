package ringsize

import (
	"errors"
	"fmt"
	"net/http"

	"masterdata-backend/internal/integrity"
)

// Error is a ring-size domain error with a stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

var ErrNotFound = &Error{
	Code:    "RING_SIZE_NOT_FOUND",
	Message: "Ring size not found",
}

func NewDuplicate(field, value string) *Error {
	return &Error{
		Code:    "RING_SIZE_DUPLICATE",
		Message: fmt.Sprintf("Ring size with %s '%s' already exists", field, value),
	}
}

func NewInvalidID(id string) *Error {
	return &Error{
		Code:    "INVALID_RING_SIZE_ID",
		Message: fmt.Sprintf("Invalid ring size ID: %s", id),
	}
}

func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrNotFound.Code
}

// GetErrorResponse maps a domain error to an HTTP status, message and code.
func GetErrorResponse(err error) (int, string, string) {
	var de *Error
	if errors.As(err, &de) {
		switch de.Code {
		case ErrNotFound.Code:
			return http.StatusNotFound, de.Message, de.Code
		case "RING_SIZE_DUPLICATE":
			return http.StatusConflict, de.Message, de.Code
		case "INVALID_RING_SIZE_ID":
			return http.StatusBadRequest, de.Message, de.Code
		default:
			return http.StatusInternalServerError, de.Message, de.Code
		}
	}
	return integrity.MapToHTTP(err)
}
