package categorytype

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// CreateRequest carries a new category type. Name and code are
// mandatory; the slug is always derived, never accepted from the caller.
type CreateRequest struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Code,
			validation.Required.Error("code is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Status,
			validation.In(string(shared.StatusActive), string(shared.StatusInactive)),
		),
	)
}

// UpdateRequest mutates a strict subset of fields. Nil means the field
// was not part of this mutation; a non-nil pointer counts as touched
// even when the value is unchanged.
type UpdateRequest struct {
	Name   *string `json:"name"`
	Code   *string `json:"code"`
	Status *string `json:"status"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Code,
			validation.NilOrNotEmpty.Error("code cannot be empty"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Status,
			validation.In(string(shared.StatusActive), string(shared.StatusInactive)),
		),
	)
}

// StatusRequest flips only the lifecycle flag.
type StatusRequest struct {
	Status string `json:"status"`
}

func (r StatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(string(shared.StatusActive), string(shared.StatusInactive)),
		),
	)
}

// Response is the API shape of a category type.
type Response struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Code      string        `json:"code"`
	Slug      string        `json:"slug"`
	Status    shared.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ToResponse maps the model to its API shape.
func ToResponse(ct *CategoryType) *Response {
	return &Response{
		ID:        ct.ID,
		Name:      ct.Name,
		Code:      ct.Code,
		Slug:      ct.Slug,
		Status:    ct.Status,
		CreatedAt: ct.CreatedAt,
		UpdatedAt: ct.UpdatedAt,
	}
}
