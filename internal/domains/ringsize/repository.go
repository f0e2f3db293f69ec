package ringsize

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the ring-size persistence contract. The AsDefault
// variants demote every other default and write the given row inside
// one transaction, so the exclusivity invariant holds atomically.
type Repository interface {
	Create(ctx context.Context, rs *RingSize) (*RingSize, error)
	CreateAsDefault(ctx context.Context, rs *RingSize) (*RingSize, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RingSize, error)
	GetDefault(ctx context.Context) (*RingSize, error)
	List(ctx context.Context, filter ListFilter) ([]*RingSize, int, error)
	Update(ctx context.Context, rs *RingSize) (*RingSize, error)
	UpdateAsDefault(ctx context.Context, rs *RingSize) (*RingSize, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name decimal.Decimal, excludeID uuid.UUID) (bool, error)
}
