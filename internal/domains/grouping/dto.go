package grouping

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// CreateRequest is the payload for creating a style or collection.
type CreateRequest struct {
	Title           string   `json:"title"`
	Code            string   `json:"code"`
	CategoryIDs     []string `json:"category_ids"`
	CategoryTypeIDs []string `json:"category_type_ids"`
	Status          string   `json:"status"`
}

func (r *CreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Code, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.CategoryIDs, validation.Each(is.UUIDv4)),
		validation.Field(&r.CategoryTypeIDs, validation.Each(is.UUIDv4)),
		validation.Field(&r.Status, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
	)
}

// UpdateRequest carries a partial update. Nil fields are untouched; an
// empty slice clears the corresponding list.
type UpdateRequest struct {
	Title           *string   `json:"title"`
	Code            *string   `json:"code"`
	CategoryIDs     *[]string `json:"category_ids"`
	CategoryTypeIDs *[]string `json:"category_type_ids"`
	Status          *string   `json:"status"`
}

func (r *UpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Code, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.CategoryIDs, validation.Each(is.UUIDv4)),
		validation.Field(&r.CategoryTypeIDs, validation.Each(is.UUIDv4)),
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

// Response is the API shape of a grouping.
type Response struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Code            string        `json:"code"`
	Slug            string        `json:"slug"`
	CategoryIDs     []uuid.UUID   `json:"category_ids"`
	CategoryTypeIDs []uuid.UUID   `json:"category_type_ids"`
	Status          shared.Status `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func ToResponse(g *Grouping) *Response {
	return &Response{
		ID:              g.ID,
		Title:           g.Title,
		Code:            g.Code,
		Slug:            g.Slug,
		CategoryIDs:     g.CategoryIDs,
		CategoryTypeIDs: g.CategoryTypeIDs,
		Status:          g.Status,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}
