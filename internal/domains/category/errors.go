package category

import (
	"errors"
	"fmt"
	"net/http"

	"masterdata-backend/internal/integrity"
)

// Error is a category domain error with a stable code.
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
	Code:    "CATEGORY_NOT_FOUND",
	Message: "Category not found",
}

func NewDuplicate(field, value string) *Error {
	return &Error{
		Code:    "CATEGORY_DUPLICATE",
		Message: fmt.Sprintf("Category with %s '%s' already exists", field, value),
	}
}

func NewInvalidID(id string) *Error {
	return &Error{
		Code:    "INVALID_CATEGORY_ID",
		Message: fmt.Sprintf("Invalid category ID: %s", id),
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
		case "CATEGORY_DUPLICATE":
			return http.StatusConflict, de.Message, de.Code
		case "INVALID_CATEGORY_ID":
			return http.StatusBadRequest, de.Message, de.Code
		default:
			return http.StatusInternalServerError, de.Message, de.Code
		}
	}
	return integrity.MapToHTTP(err)
}
