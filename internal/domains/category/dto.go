package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// CreateRequest is the payload for creating a category.
type CreateRequest struct {
	Name           string `json:"name"`
	Code           string `json:"code"`
	CategoryTypeID string `json:"category_type_id"`
	Status         string `json:"status"`
}

func (r *CreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Code, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.CategoryTypeID, validation.Required, is.UUIDv4),
		validation.Field(&r.Status, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
	)
}

// UpdateRequest carries a partial update. Nil fields are untouched.
type UpdateRequest struct {
	Name           *string `json:"name"`
	Code           *string `json:"code"`
	CategoryTypeID *string `json:"category_type_id"`
	Status         *string `json:"status"`
}

func (r *UpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Code, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.CategoryTypeID, validation.NilOrNotEmpty, is.UUIDv4),
		validation.Field(&r.Status, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
	)
}

// StatusRequest toggles the status only.
type StatusRequest struct {
	Status string `json:"status"`
}

func (r *StatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required,
			validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
	)
}

// Response is the API shape of a category.
type Response struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Code           string        `json:"code"`
	Slug           string        `json:"slug"`
	CategoryTypeID uuid.UUID     `json:"category_type_id"`
	Status         shared.Status `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func ToResponse(c *Category) *Response {
	return &Response{
		ID:             c.ID,
		Name:           c.Name,
		Code:           c.Code,
		Slug:           c.Slug,
		CategoryTypeID: c.CategoryTypeID,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
