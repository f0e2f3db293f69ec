package grouping

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the grouping persistence contract. An implementation
// is bound to a single Kind.
type Repository interface {
	Create(ctx context.Context, g *Grouping) (*Grouping, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Grouping, error)
	GetBySlug(ctx context.Context, slug string) (*Grouping, error)
	List(ctx context.Context, filter ListFilter) ([]*Grouping, int, error)
	Update(ctx context.Context, g *Grouping) (*Grouping, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error)
}
