package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/shared"
	"masterdata-backend/internal/shared/response"
)

// CategoryTypeHandler handles HTTP requests for the category-type domain.
type CategoryTypeHandler struct {
	service categorytype.Service
}

// NewCategoryTypeHandler creates a new category-type handler.
func NewCategoryTypeHandler(service categorytype.Service) *CategoryTypeHandler {
	return &CategoryTypeHandler{service: service}
}

// Create handles POST /category-types
func (h *CategoryTypeHandler) Create(c *gin.Context) {
	var req categorytype.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Category type created successfully", result)
}

// Get handles GET /category-types/:id
func (h *CategoryTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(categorytype.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category type retrieved successfully", result)
}

// GetBySlug handles GET /category-types/by-slug/*slug
func (h *CategoryTypeHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Slug is required")
		return
	}

	result, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category type retrieved successfully", result)
}

// List handles GET /category-types
func (h *CategoryTypeHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	filter := categorytype.ListFilter{
		Status: shared.Status(c.Query("status")),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	results, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Category types retrieved successfully", results, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Update handles PUT /category-types/:id
func (h *CategoryTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(categorytype.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req categorytype.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category type updated successfully", result)
}

// UpdateStatus handles PATCH /category-types/:id/status
func (h *CategoryTypeHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(categorytype.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req categorytype.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category type status updated successfully", result)
}

// Delete handles DELETE /category-types/:id
func (h *CategoryTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := categorytype.GetErrorResponse(categorytype.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := categorytype.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category type deleted successfully", nil)
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
