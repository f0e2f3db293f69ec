package ringsize

import (
	"context"

	"github.com/google/uuid"
)

// Service is the ring-size business contract.
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Response, error)
	Get(ctx context.Context, id uuid.UUID) (*Response, error)
	GetDefault(ctx context.Context) (*Response, error)
	List(ctx context.Context, filter ListFilter) ([]*Response, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Response, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *StatusRequest) (*Response, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
