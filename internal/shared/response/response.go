package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries pagination info for list endpoints.
type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
}

// Success writes a success envelope.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMeta writes a success envelope with pagination metadata.
func SuccessWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorResponse writes an error envelope with a machine-readable code.
func ErrorResponse(c *gin.Context, statusCode int, message, code string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, message, "BAD_REQUEST")
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, 401, message, "UNAUTHORIZED")
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, message, "NOT_FOUND")
}

func Conflict(c *gin.Context, message string) {
	ErrorResponse(c, 409, message, "CONFLICT")
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, message, "INTERNAL_SERVER_ERROR")
}
