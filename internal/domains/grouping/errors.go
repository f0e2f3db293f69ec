package grouping

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"masterdata-backend/internal/integrity"
)

// Error is a grouping domain error. Codes carry the kind so style and
// collection failures stay distinguishable to API clients.
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

func codePrefix(kind Kind) string {
	return strings.ToUpper(string(kind))
}

func NewNotFound(kind Kind) *Error {
	return &Error{
		Code:    codePrefix(kind) + "_NOT_FOUND",
		Message: fmt.Sprintf("%s not found", kind.Label()),
	}
}

func NewDuplicate(kind Kind, field, value string) *Error {
	return &Error{
		Code:    codePrefix(kind) + "_DUPLICATE",
		Message: fmt.Sprintf("%s with %s '%s' already exists", kind.Label(), field, value),
	}
}

func NewInvalidID(kind Kind, id string) *Error {
	return &Error{
		Code:    "INVALID_" + codePrefix(kind) + "_ID",
		Message: fmt.Sprintf("Invalid %s ID: %s", strings.ToLower(kind.Label()), id),
	}
}

func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && strings.HasSuffix(de.Code, "_NOT_FOUND")
}

// GetErrorResponse maps a domain error to an HTTP status, message and code.
func GetErrorResponse(err error) (int, string, string) {
	var de *Error
	if errors.As(err, &de) {
		switch {
		case strings.HasSuffix(de.Code, "_NOT_FOUND"):
			return http.StatusNotFound, de.Message, de.Code
		case strings.HasSuffix(de.Code, "_DUPLICATE"):
			return http.StatusConflict, de.Message, de.Code
		case strings.HasSuffix(de.Code, "_ID"):
			return http.StatusBadRequest, de.Message, de.Code
		default:
			return http.StatusInternalServerError, de.Message, de.Code
		}
	}
	return integrity.MapToHTTP(err)
}
