package integrity

import (
	"context"

	"github.com/google/uuid"
)

// Reference kinds used in REFERENCE_NOT_FOUND errors.
const (
	RefKindCategory     = "category"
	RefKindCategoryType = "category type"
)

// Ref is one declared foreign key inside an in-flight document.
type Ref struct {
	Kind string
	ID   uuid.UUID
}

// Resolver answers whether a reference currently resolves to an
// existing record. Implemented by the entity repositories; the lookup
// is a point-in-time snapshot, deliberately not isolated from
// concurrent writers.
type Resolver interface {
	Resolve(ctx context.Context, ref Ref) (bool, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, ref Ref) (bool, error)

func (f ResolverFunc) Resolve(ctx context.Context, ref Ref) (bool, error) {
	return f(ctx, ref)
}

// ValidateRefs checks each ref in order and fails on the first one that
// does not resolve. It runs on every commit, including updates that do
// not touch the reference lists, so a reference invalidated by an
// out-of-band deletion is caught on the next save.
func ValidateRefs(ctx context.Context, r Resolver, refs ...Ref) error {
	for _, ref := range refs {
		ok, err := r.Resolve(ctx, ref)
		if err != nil {
			return err
		}
		if !ok {
			return NewReferenceNotFound(ref.Kind, ref.ID.String())
		}
	}
	return nil
}
