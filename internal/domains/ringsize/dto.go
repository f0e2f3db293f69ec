package ringsize

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"masterdata-backend/internal/shared"
)

func positive(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a number")
	}
	if d.Sign() <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}

// CreateRequest is the payload for creating a ring size. Numeric
// fields accept JSON numbers or numeric strings.
type CreateRequest struct {
	Name        decimal.Decimal `json:"name"`
	Code        decimal.Decimal `json:"code"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	IsDefault   string          `json:"is_default"`
}

func (r *CreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.By(positive)),
		validation.Field(&r.Code, validation.By(positive)),
		validation.Field(&r.Description, validation.Length(0, 500)),
		validation.Field(&r.Status, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
		validation.Field(&r.IsDefault, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
	)
}

// UpdateRequest carries a partial update. Nil fields are untouched.
type UpdateRequest struct {
	Name        *decimal.Decimal `json:"name"`
	Code        *decimal.Decimal `json:"code"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	IsDefault   *string          `json:"is_default"`
}

func (r *UpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.By(positive)),
		validation.Field(&r.Code, validation.By(positive)),
		validation.Field(&r.Description, validation.Length(0, 500)),
		validation.Field(&r.Status, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
		validation.Field(&r.IsDefault, validation.In(string(shared.StatusActive), string(shared.StatusInactive))),
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

// Response is the API shape of a ring size.
type Response struct {
	ID          uuid.UUID       `json:"id"`
	Name        decimal.Decimal `json:"name"`
	Code        decimal.Decimal `json:"code"`
	Description string          `json:"description"`
	Status      shared.Status   `json:"status"`
	IsDefault   shared.Status   `json:"is_default"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToResponse(rs *RingSize) *Response {
	return &Response{
		ID:          rs.ID,
		Name:        rs.Name,
		Code:        rs.Code,
		Description: rs.Description,
		Status:      rs.Status,
		IsDefault:   rs.IsDefault,
		CreatedAt:   rs.CreatedAt,
		UpdatedAt:   rs.UpdatedAt,
	}
}
