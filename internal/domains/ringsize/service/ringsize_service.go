package service

import (
	"context"

	"github.com/google/uuid"

	"masterdata-backend/internal/domains/ringsize"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

// ringSizeService implements ringsize.Service. Ring sizes have no slug
// or code derivation; the only pipeline concern is default
// exclusivity, enforced atomically by the repository's AsDefault
// writes.
type ringSizeService struct {
	repo ringsize.Repository
}

// NewRingSizeService creates the ring-size service.
func NewRingSizeService(repo ringsize.Repository) ringsize.Service {
	return &ringSizeService{repo: repo}
}

// commit routes the write to the exclusive path when this mutation
// supplies is_default with value active, even if the stored value was
// already active.
func (s *ringSizeService) commit(
	ctx context.Context,
	rs *ringsize.RingSize,
	dirty integrity.FieldSet,
	persist func(context.Context, *ringsize.RingSize) (*ringsize.RingSize, error),
	persistAsDefault func(context.Context, *ringsize.RingSize) (*ringsize.RingSize, error),
) (*ringsize.RingSize, error) {
	if dirty.Has("is_default") && rs.IsDefault == shared.StatusActive {
		return persistAsDefault(ctx, rs)
	}
	return persist(ctx, rs)
}

func (s *ringSizeService) Create(ctx context.Context, req *ringsize.CreateRequest) (*ringsize.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	if exists, err := s.repo.ExistsByName(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, ringsize.NewDuplicate("name", req.Name.String())
	}

	status := shared.Status(req.Status)
	if status == "" {
		status = shared.StatusActive
	}
	isDefault := shared.Status(req.IsDefault)
	if isDefault == "" {
		isDefault = shared.StatusInactive
	}

	rs := &ringsize.RingSize{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Status:      status,
		IsDefault:   isDefault,
	}

	dirty := integrity.Fields("name", "code", "description", "status")
	if req.IsDefault != "" {
		dirty.Add("is_default")
	}

	created, err := s.commit(ctx, rs, dirty, s.repo.Create, s.repo.CreateAsDefault)
	if err != nil {
		return nil, err
	}

	return ringsize.ToResponse(created), nil
}

func (s *ringSizeService) Get(ctx context.Context, id uuid.UUID) (*ringsize.Response, error) {
	rs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ringsize.ToResponse(rs), nil
}

func (s *ringSizeService) GetDefault(ctx context.Context) (*ringsize.Response, error) {
	rs, err := s.repo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	return ringsize.ToResponse(rs), nil
}

func (s *ringSizeService) List(ctx context.Context, filter ringsize.ListFilter) ([]*ringsize.Response, int, error) {
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*ringsize.Response, len(items))
	for i, rs := range items {
		responses[i] = ringsize.ToResponse(rs)
	}
	return responses, total, nil
}

func (s *ringSizeService) Update(ctx context.Context, id uuid.UUID, req *ringsize.UpdateRequest) (*ringsize.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dirty := integrity.Fields()
	if req.Name != nil {
		if exists, err := s.repo.ExistsByName(ctx, *req.Name, id); err != nil {
			return nil, err
		} else if exists {
			return nil, ringsize.NewDuplicate("name", req.Name.String())
		}
		existing.Name = *req.Name
		dirty.Add("name")
	}
	if req.Code != nil {
		existing.Code = *req.Code
		dirty.Add("code")
	}
	if req.Description != nil {
		existing.Description = *req.Description
		dirty.Add("description")
	}
	if req.Status != nil {
		existing.Status = shared.Status(*req.Status)
		dirty.Add("status")
	}
	if req.IsDefault != nil {
		existing.IsDefault = shared.Status(*req.IsDefault)
		dirty.Add("is_default")
	}

	updated, err := s.commit(ctx, existing, dirty, s.repo.Update, s.repo.UpdateAsDefault)
	if err != nil {
		return nil, err
	}

	return ringsize.ToResponse(updated), nil
}

func (s *ringSizeService) UpdateStatus(ctx context.Context, id uuid.UUID, req *ringsize.StatusRequest) (*ringsize.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	status := req.Status
	update := &ringsize.UpdateRequest{Status: &status}
	return s.Update(ctx, id, update)
}

func (s *ringSizeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
