package categorytype

import (
	"time"

	"github.com/google/uuid"

	"masterdata-backend/internal/shared"
)

// CategoryType is the top level of the jewellery taxonomy. Its slug is
// derived from the name under the fixed /jewellery/ root and is the
// prefix every child category slug hangs off.
type CategoryType struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Code      string        `db:"code" json:"code"`
	Slug      string        `db:"slug" json:"slug"`
	Status    shared.Status `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// ListFilter narrows List queries.
type ListFilter struct {
	Status shared.Status // empty = all
	Search string        // substring match on name
	Limit  int
	Offset int
}
