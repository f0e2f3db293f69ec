package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masterdata-backend/internal/domains/auth"
	"masterdata-backend/internal/shared/response"
)

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		status, message, code := auth.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}
