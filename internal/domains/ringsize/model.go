package ringsize

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"masterdata-backend/internal/shared"
)

// RingSize is a flat reference entity. Name is the numeric size and is
// unique; at most one row holds IsDefault = active at steady state.
type RingSize struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        decimal.Decimal `json:"name" db:"name"`
	Code        decimal.Decimal `json:"code" db:"code"`
	Description string          `json:"description" db:"description"`
	Status      shared.Status   `json:"status" db:"status"`
	IsDefault   shared.Status   `json:"is_default" db:"is_default"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// ListFilter narrows List queries.
type ListFilter struct {
	Status shared.Status
	Limit  int
	Offset int
}
