package category

import (
	"time"

	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// Category is a leaf node under a category type. Its slug extends the
// parent type's slug by one segment.
type Category struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	Name           string        `json:"name" db:"name"`
	Code           string        `json:"code" db:"code"`
	Slug           string        `json:"slug" db:"slug"`
	CategoryTypeID uuid.UUID     `json:"category_type_id" db:"category_type_id"`
	Status         shared.Status `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// ListFilter narrows List queries.
type ListFilter struct {
	Status         shared.Status
	Search         string
	CategoryTypeID *uuid.UUID
	Limit          int
	Offset         int
}
