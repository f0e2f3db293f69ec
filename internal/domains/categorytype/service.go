package categorytype

import (
	"context"

	"github.com/google/uuid"
)

// Service is the category-type business contract. Every create/update
// commits through the write pipeline: code normalization and slug
// derivation gated on the mutation's field set.
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Response, error)
	Get(ctx context.Context, id uuid.UUID) (*Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
	List(ctx context.Context, filter ListFilter) ([]*Response, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Response, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *StatusRequest) (*Response, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
