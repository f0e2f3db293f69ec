package categorytype

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the category-type data access contract.
type Repository interface {
	Create(ctx context.Context, ct *CategoryType) (*CategoryType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryType, error)
	GetBySlug(ctx context.Context, slug string) (*CategoryType, error)
	List(ctx context.Context, filter ListFilter) ([]*CategoryType, int, error)
	Update(ctx context.Context, ct *CategoryType) (*CategoryType, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists backs the referential validator of dependent entities.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByName / ExistsByCode back the handlers' uniqueness
	// pre-checks. excludeID skips the record being updated.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error)
}
