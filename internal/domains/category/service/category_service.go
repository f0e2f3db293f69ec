package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"masterdata-backend/internal/domains/category"
	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

// categoryService implements category.Service. It depends on the
// category-type repository to validate the parent reference and to
// read the parent slug during derivation.
type categoryService struct {
	repo     category.Repository
	typeRepo categorytype.Repository
	resolver integrity.Resolver
}

// NewCategoryService creates the category service.
func NewCategoryService(repo category.Repository, typeRepo categorytype.Repository) category.Service {
	return &categoryService{
		repo:     repo,
		typeRepo: typeRepo,
		resolver: integrity.ResolverFunc(func(ctx context.Context, ref integrity.Ref) (bool, error) {
			return typeRepo.Exists(ctx, ref.ID)
		}),
	}
}

// commit runs the category write pipeline: the parent reference is
// validated on every commit, the slug re-derives only when the name
// was supplied, and the code normalizes only when supplied.
func (s *categoryService) commit(
	ctx context.Context,
	c *category.Category,
	dirty integrity.FieldSet,
	persist func(context.Context, *category.Category) (*category.Category, error),
) (*category.Category, error) {
	err := integrity.Run(ctx,
		integrity.Stage{Name: "validate category type", Run: func(ctx context.Context) error {
			return integrity.ValidateRefs(ctx, s.resolver, integrity.Ref{
				Kind: integrity.RefKindCategoryType,
				ID:   c.CategoryTypeID,
			})
		}},
		integrity.Stage{Name: "derive slug", Run: func(ctx context.Context) error {
			if !dirty.Has("name") {
				return nil
			}
			if strings.TrimSpace(c.Name) == "" {
				return integrity.NewValidationFailed("name is empty")
			}
			parent, err := s.typeRepo.GetByID(ctx, c.CategoryTypeID)
			if err != nil {
				if categorytype.IsNotFound(err) {
					return integrity.NewReferenceNotFound(integrity.RefKindCategoryType, c.CategoryTypeID.String())
				}
				return err
			}
			c.Slug = integrity.CategorySlug(parent.Slug, c.Name)
			return nil
		}},
		integrity.Stage{Name: "normalize code", Run: func(context.Context) error {
			if dirty.Has("code") {
				c.Code = integrity.NormalizeCode(c.Code)
			}
			return nil
		}},
	)
	if err != nil {
		return nil, err
	}

	return persist(ctx, c)
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateRequest) (*category.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	typeID, err := uuid.Parse(req.CategoryTypeID)
	if err != nil {
		return nil, integrity.NewValidationFailed("category_type_id is not a valid uuid")
	}

	if exists, err := s.repo.ExistsByName(ctx, strings.TrimSpace(req.Name), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, category.NewDuplicate("name", req.Name)
	}
	if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(req.Code), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, category.NewDuplicate("code", req.Code)
	}

	status := shared.Status(req.Status)
	if status == "" {
		status = shared.StatusActive
	}

	c := &category.Category{
		Name:           strings.TrimSpace(req.Name),
		Code:           req.Code,
		CategoryTypeID: typeID,
		Status:         status,
	}

	created, err := s.commit(ctx, c,
		integrity.Fields("name", "code", "category_type_id", "status"), s.repo.Create)
	if err != nil {
		return nil, err
	}

	return category.ToResponse(created), nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*category.Response, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return category.ToResponse(c), nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*category.Response, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return category.ToResponse(c), nil
}

func (s *categoryService) List(ctx context.Context, filter category.ListFilter) ([]*category.Response, int, error) {
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

	responses := make([]*category.Response, len(items))
	for i, c := range items {
		responses[i] = category.ToResponse(c)
	}
	return responses, total, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateRequest) (*category.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Reassigning the parent type alone does not rewrite the slug; the
	// stored slug stays until the next name change.
	dirty := integrity.Fields()
	if req.Name != nil {
		if exists, err := s.repo.ExistsByName(ctx, strings.TrimSpace(*req.Name), id); err != nil {
			return nil, err
		} else if exists {
			return nil, category.NewDuplicate("name", *req.Name)
		}
		existing.Name = strings.TrimSpace(*req.Name)
		dirty.Add("name")
	}
	if req.Code != nil {
		if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(*req.Code), id); err != nil {
			return nil, err
		} else if exists {
			return nil, category.NewDuplicate("code", *req.Code)
		}
		existing.Code = *req.Code
		dirty.Add("code")
	}
	if req.CategoryTypeID != nil {
		typeID, err := uuid.Parse(*req.CategoryTypeID)
		if err != nil {
			return nil, integrity.NewValidationFailed("category_type_id is not a valid uuid")
		}
		existing.CategoryTypeID = typeID
		dirty.Add("category_type_id")
	}
	if req.Status != nil {
		existing.Status = shared.Status(*req.Status)
		dirty.Add("status")
	}

	updated, err := s.commit(ctx, existing, dirty, s.repo.Update)
	if err != nil {
		return nil, err
	}

	return category.ToResponse(updated), nil
}

func (s *categoryService) UpdateStatus(ctx context.Context, id uuid.UUID, req *category.StatusRequest) (*category.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	status := req.Status
	update := &category.UpdateRequest{Status: &status}
	return s.Update(ctx, id, update)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
