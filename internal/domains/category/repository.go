package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the category persistence contract.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, filter ListFilter) ([]*Category, int, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error)
}
