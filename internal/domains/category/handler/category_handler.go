package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"masterdata-backend/internal/domains/category"
	"masterdata-backend/internal/shared"
	"masterdata-backend/internal/shared/response"
)

// CategoryHandler handles HTTP requests for the category domain.
type CategoryHandler struct {
	service category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", result)
}

// Get handles GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := category.GetErrorResponse(category.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category retrieved successfully", result)
}

// GetBySlug handles GET /categories/by-slug/*slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Slug is required")
		return
	}

	result, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category retrieved successfully", result)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	filter := category.ListFilter{
		Status: shared.Status(c.Query("status")),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if raw := c.Query("category_type_id"); raw != "" {
		typeID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid category_type_id filter")
			return
		}
		filter.CategoryTypeID = &typeID
	}

	results, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Categories retrieved successfully", results, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := category.GetErrorResponse(category.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req category.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category updated successfully", result)
}

// UpdateStatus handles PATCH /categories/:id/status
func (h *CategoryHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := category.GetErrorResponse(category.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req category.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category status updated successfully", result)
}

// Delete handles DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := category.GetErrorResponse(category.NewInvalidID(c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := category.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
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
