package grouping

import (
	"time"

	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// Kind selects which grouping table a repository and service operate
// on. Styles and collections share one schema and one write pipeline.
type Kind string

const (
	KindStyle      Kind = "style"
	KindCollection Kind = "collection"
)

// Table returns the backing table name.
func (k Kind) Table() string {
	if k == KindCollection {
		return "collections"
	}
	return "styles"
}

// Label returns the capitalized singular for messages.
func (k Kind) Label() string {
	if k == KindCollection {
		return "Collection"
	}
	return "Style"
}

// Grouping is a curated set of categories and category types under a
// single title. It references both by id without foreign keys.
type Grouping struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	Code            string        `json:"code" db:"code"`
	Slug            string        `json:"slug" db:"slug"`
	CategoryIDs     []uuid.UUID   `json:"category_ids" db:"category_ids"`
	CategoryTypeIDs []uuid.UUID   `json:"category_type_ids" db:"category_type_ids"`
	Status          shared.Status `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// ListFilter narrows List queries.
type ListFilter struct {
	Status shared.Status
	Search string
	Limit  int
	Offset int
}
