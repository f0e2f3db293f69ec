package categorytype

import (
	"errors"
	"fmt"
	"net/http"

	"masterdata-backend/internal/integrity"
)

// Error is the category-type domain error.
type Error struct {
	Code    string
	Message string
	Err     error
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

// ErrNotFound - no category type with the requested id or slug.
var ErrNotFound = &Error{
	Code:    "CATEGORY_TYPE_NOT_FOUND",
	Message: "Category type not found",
}

// NewDuplicate reports a pre-check collision on name or code.
func NewDuplicate(field, value string) *Error {
	return &Error{
		Code:    "CATEGORY_TYPE_DUPLICATE",
		Message: fmt.Sprintf("Category type with %s '%s' already exists", field, value),
	}
}

// NewInvalidID reports an unparseable id path parameter.
func NewInvalidID(id string) *Error {
	return &Error{
		Code:    "INVALID_CATEGORY_TYPE_ID",
		Message: fmt.Sprintf("Invalid category type ID: %s", id),
	}
}

// IsNotFound reports whether err is the domain not-found error.
func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrNotFound.Code
}

// GetErrorResponse maps domain and pipeline errors onto an HTTP
// status, message and error code.
func GetErrorResponse(err error) (int, string, string) {
	var de *Error
	if errors.As(err, &de) {
		switch de.Code {
		case ErrNotFound.Code:
			return http.StatusNotFound, de.Message, de.Code
		case "CATEGORY_TYPE_DUPLICATE":
			return http.StatusConflict, de.Message, de.Code
		case "INVALID_CATEGORY_TYPE_ID":
			return http.StatusBadRequest, de.Message, de.Code
		default:
			return http.StatusInternalServerError, de.Message, de.Code
		}
	}
	return integrity.MapToHTTP(err)
}
