package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"masterdata-backend/internal/domains/grouping"
	"masterdata-backend/internal/shared"
	"masterdata-backend/internal/shared/response"
)

// GroupingHandler handles HTTP requests for one grouping kind. The
// router mounts one instance under /styles and one under /collections.
type GroupingHandler struct {
	kind    grouping.Kind
	service grouping.Service
}

// NewGroupingHandler creates a style or collection handler.
func NewGroupingHandler(kind grouping.Kind, service grouping.Service) *GroupingHandler {
	return &GroupingHandler{kind: kind, service: service}
}

// Create handles POST /styles and POST /collections
func (h *GroupingHandler) Create(c *gin.Context) {
	var req grouping.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusCreated, h.kind.Label()+" created successfully", result)
}

// Get handles GET /:id
func (h *GroupingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := grouping.GetErrorResponse(grouping.NewInvalidID(h.kind, c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, h.kind.Label()+" retrieved successfully", result)
}

// GetBySlug handles GET /by-slug/:slug
func (h *GroupingHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "Slug is required")
		return
	}

	result, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, h.kind.Label()+" retrieved successfully", result)
}

// List handles GET /
func (h *GroupingHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	filter := grouping.ListFilter{
		Status: shared.Status(c.Query("status")),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	results, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, h.kind.Label()+"s retrieved successfully", results, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Update handles PUT /:id
func (h *GroupingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := grouping.GetErrorResponse(grouping.NewInvalidID(h.kind, c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req grouping.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, h.kind.Label()+" updated successfully", result)
}

// UpdateStatus handles PATCH /:id/status
func (h *GroupingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := grouping.GetErrorResponse(grouping.NewInvalidID(h.kind, c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	var req grouping.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, h.kind.Label()+" status updated successfully", result)
}

// Delete handles DELETE /:id
func (h *GroupingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		status, message, code := grouping.GetErrorResponse(grouping.NewInvalidID(h.kind, c.Param("id")))
		response.ErrorResponse(c, status, message, code)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		status, message, code := grouping.GetErrorResponse(err)
		response.ErrorResponse(c, status, message, code)
		return
	}

	response.Success(c, http.StatusOK, h.kind.Label()+" deleted successfully", nil)
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
