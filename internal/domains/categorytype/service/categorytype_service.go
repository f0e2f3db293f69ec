package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

// categoryTypeService implements categorytype.Service.
type categoryTypeService struct {
	repo categorytype.Repository
}

// NewCategoryTypeService creates the category-type service.
func NewCategoryTypeService(repo categorytype.Repository) categorytype.Service {
	return &categoryTypeService{repo: repo}
}

// commit runs the category-type write pipeline over the in-flight
// record: normalize code, then derive the slug, each gated on the
// mutation's field set. persist is the final repository write.
func (s *categoryTypeService) commit(
	ctx context.Context,
	ct *categorytype.CategoryType,
	dirty integrity.FieldSet,
	persist func(context.Context, *categorytype.CategoryType) (*categorytype.CategoryType, error),
) (*categorytype.CategoryType, error) {
	err := integrity.Run(ctx,
		integrity.Stage{Name: "normalize code", Run: func(context.Context) error {
			if dirty.Has("code") {
				ct.Code = integrity.NormalizeCode(ct.Code)
			}
			return nil
		}},
		integrity.Stage{Name: "derive slug", Run: func(context.Context) error {
			if !dirty.Has("name") {
				return nil
			}
			if strings.TrimSpace(ct.Name) == "" {
				return integrity.NewValidationFailed("name is empty")
			}
			ct.Slug = integrity.CategoryTypeSlug(ct.Name)
			return nil
		}},
	)
	if err != nil {
		return nil, err
	}

	return persist(ctx, ct)
}

func (s *categoryTypeService) Create(ctx context.Context, req *categorytype.CreateRequest) (*categorytype.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	// Uniqueness pre-checks run before any derivation work.
	if exists, err := s.repo.ExistsByName(ctx, strings.TrimSpace(req.Name), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, categorytype.NewDuplicate("name", req.Name)
	}
	if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(req.Code), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, categorytype.NewDuplicate("code", req.Code)
	}

	status := shared.Status(req.Status)
	if status == "" {
		status = shared.StatusActive
	}

	ct := &categorytype.CategoryType{
		Name:   strings.TrimSpace(req.Name),
		Code:   req.Code,
		Status: status,
	}

	created, err := s.commit(ctx, ct, integrity.Fields("name", "code", "status"), s.repo.Create)
	if err != nil {
		return nil, err
	}

	return categorytype.ToResponse(created), nil
}

func (s *categoryTypeService) Get(ctx context.Context, id uuid.UUID) (*categorytype.Response, error) {
	ct, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return categorytype.ToResponse(ct), nil
}

func (s *categoryTypeService) GetBySlug(ctx context.Context, slug string) (*categorytype.Response, error) {
	ct, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return categorytype.ToResponse(ct), nil
}

func (s *categoryTypeService) List(ctx context.Context, filter categorytype.ListFilter) ([]*categorytype.Response, int, error) {
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

	responses := make([]*categorytype.Response, len(items))
	for i, ct := range items {
		responses[i] = categorytype.ToResponse(ct)
	}
	return responses, total, nil
}

func (s *categoryTypeService) Update(ctx context.Context, id uuid.UUID, req *categorytype.UpdateRequest) (*categorytype.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The dirty set records which fields the caller supplied, not which
	// values changed; resubmitting an unchanged name still re-derives.
	dirty := integrity.Fields()
	if req.Name != nil {
		if exists, err := s.repo.ExistsByName(ctx, strings.TrimSpace(*req.Name), id); err != nil {
			return nil, err
		} else if exists {
			return nil, categorytype.NewDuplicate("name", *req.Name)
		}
		existing.Name = strings.TrimSpace(*req.Name)
		dirty.Add("name")
	}
	if req.Code != nil {
		if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(*req.Code), id); err != nil {
			return nil, err
		} else if exists {
			return nil, categorytype.NewDuplicate("code", *req.Code)
		}
		existing.Code = *req.Code
		dirty.Add("code")
	}
	if req.Status != nil {
		existing.Status = shared.Status(*req.Status)
		dirty.Add("status")
	}

	updated, err := s.commit(ctx, existing, dirty, s.repo.Update)
	if err != nil {
		return nil, err
	}

	return categorytype.ToResponse(updated), nil
}

func (s *categoryTypeService) UpdateStatus(ctx context.Context, id uuid.UUID, req *categorytype.StatusRequest) (*categorytype.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	status := req.Status
	update := &categorytype.UpdateRequest{Status: &status}
	return s.Update(ctx, id, update)
}

func (s *categoryTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
