package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"masterdata-backend/internal/domains/ringsize"
	"masterdata-backend/internal/shared"
	"masterdata-backend/internal/shared/response"
)

// RingSizeHandler handles HTTP requests for the ring-size domain.
type RingSizeHandler struct {
	service ringsize.Service
}

// NewRingSizeHandler creates a new ring-size handler.
func NewRingSizeHandler(service ringsize.Service) *RingSizeHandler {
	return &RingSizeHandler{service: service}
}

// Create handles POST /ring-sizes
func (h *RingSizeHandler) Create(c *gin.Context) {
	var req ringsize.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Ring size created successfully", result)
}

// Get handles GET /ring-sizes/:id
func (h *RingSizeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(ringsize.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Ring size retrieved successfully", result)
}

// GetDefault handles GET /ring-sizes/default
func (h *RingSizeHandler) GetDefault(c *gin.Context) {
	result, err := h.service.GetDefault(c.Request.Context())
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Default ring size retrieved successfully", result)
}

// List handles GET /ring-sizes
func (h *RingSizeHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	filter := ringsize.ListFilter{
		Status: shared.Status(c.Query("status")),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	results, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Ring sizes retrieved successfully", results, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Update handles PUT /ring-sizes/:id
func (h *RingSizeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(ringsize.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req ringsize.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Ring size updated successfully", result)
}

// UpdateStatus handles PATCH /ring-sizes/:id/status
func (h *RingSizeHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(ringsize.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req ringsize.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Ring size status updated successfully", result)
}

// Delete handles DELETE /ring-sizes/:id
func (h *RingSizeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := ringsize.GetErrorResponse(ringsize.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := ringsize.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Ring size deleted successfully", nil)
}

func pagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return page, limit
}
