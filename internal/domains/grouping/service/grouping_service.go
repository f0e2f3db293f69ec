package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"masterdata-backend/internal/domains/category"
	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/domains/grouping"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

// groupingService implements grouping.Service for one Kind. Both
// referenced domains are resolved through their repositories so every
// commit revalidates the stored id lists.
type groupingService struct {
	kind        grouping.Kind
	repo        grouping.Repository
	categoryRes integrity.Resolver
	typeRes     integrity.Resolver
}

// NewGroupingService creates a style or collection service.
func NewGroupingService(
	kind grouping.Kind,
	repo grouping.Repository,
	categoryRepo category.Repository,
	typeRepo categorytype.Repository,
) grouping.Service {
	return &groupingService{
		kind: kind,
		repo: repo,
		categoryRes: integrity.ResolverFunc(func(ctx context.Context, ref integrity.Ref) (bool, error) {
			return categoryRepo.Exists(ctx, ref.ID)
		}),
		typeRes: integrity.ResolverFunc(func(ctx context.Context, ref integrity.Ref) (bool, error) {
			return typeRepo.Exists(ctx, ref.ID)
		}),
	}
}

// commit runs the grouping write pipeline: category references are
// checked in list order, then category-type references, then the slug
// re-derives when the title was supplied, then the code normalizes.
func (s *groupingService) commit(
	ctx context.Context,
	g *grouping.Grouping,
	dirty integrity.FieldSet,
	persist func(context.Context, *grouping.Grouping) (*grouping.Grouping, error),
) (*grouping.Grouping, error) {
	err := integrity.Run(ctx,
		integrity.Stage{Name: "validate categories", Run: func(ctx context.Context) error {
			refs := make([]integrity.Ref, len(g.CategoryIDs))
			for i, id := range g.CategoryIDs {
				refs[i] = integrity.Ref{Kind: integrity.RefKindCategory, ID: id}
			}
			return integrity.ValidateRefs(ctx, s.categoryRes, refs...)
		}},
		integrity.Stage{Name: "validate category types", Run: func(ctx context.Context) error {
			refs := make([]integrity.Ref, len(g.CategoryTypeIDs))
			for i, id := range g.CategoryTypeIDs {
				refs[i] = integrity.Ref{Kind: integrity.RefKindCategoryType, ID: id}
			}
			return integrity.ValidateRefs(ctx, s.typeRes, refs...)
		}},
		integrity.Stage{Name: "derive slug", Run: func(context.Context) error {
			if !dirty.Has("title") {
				return nil
			}
			if strings.TrimSpace(g.Title) == "" {
				return integrity.NewValidationFailed("title is empty")
			}
			g.Slug = integrity.DeriveSlug(g.Title)
			return nil
		}},
		integrity.Stage{Name: "normalize code", Run: func(context.Context) error {
			if dirty.Has("code") {
				g.Code = integrity.NormalizeCode(g.Code)
			}
			return nil
		}},
	)
	if err != nil {
		return nil, err
	}

	return persist(ctx, g)
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, integrity.NewValidationFailed("id list contains an invalid uuid")
		}
		ids[i] = id
	}
	return ids, nil
}

func (s *groupingService) Create(ctx context.Context, req *grouping.CreateRequest) (*grouping.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	categoryIDs, err := parseIDs(req.CategoryIDs)
	if err != nil {
		return nil, err
	}
	typeIDs, err := parseIDs(req.CategoryTypeIDs)
	if err != nil {
		return nil, err
	}

	if exists, err := s.repo.ExistsByTitle(ctx, strings.TrimSpace(req.Title), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, grouping.NewDuplicate(s.kind, "title", req.Title)
	}
	if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(req.Code), uuid.Nil); err != nil {
		return nil, err
	} else if exists {
		return nil, grouping.NewDuplicate(s.kind, "code", req.Code)
	}

	status := shared.Status(req.Status)
	if status == "" {
		status = shared.StatusActive
	}

	g := &grouping.Grouping{
		Title:           strings.TrimSpace(req.Title),
		Code:            req.Code,
		CategoryIDs:     categoryIDs,
		CategoryTypeIDs: typeIDs,
		Status:          status,
	}

	created, err := s.commit(ctx, g,
		integrity.Fields("title", "code", "category_ids", "category_type_ids", "status"),
		s.repo.Create)
	if err != nil {
		return nil, err
	}

	return grouping.ToResponse(created), nil
}

func (s *groupingService) Get(ctx context.Context, id uuid.UUID) (*grouping.Response, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return grouping.ToResponse(g), nil
}

func (s *groupingService) GetBySlug(ctx context.Context, slug string) (*grouping.Response, error) {
	g, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return grouping.ToResponse(g), nil
}

func (s *groupingService) List(ctx context.Context, filter grouping.ListFilter) ([]*grouping.Response, int, error) {
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

	responses := make([]*grouping.Response, len(items))
	for i, g := range items {
		responses[i] = grouping.ToResponse(g)
	}
	return responses, total, nil
}

func (s *groupingService) Update(ctx context.Context, id uuid.UUID, req *grouping.UpdateRequest) (*grouping.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dirty := integrity.Fields()
	if req.Title != nil {
		if exists, err := s.repo.ExistsByTitle(ctx, strings.TrimSpace(*req.Title), id); err != nil {
			return nil, err
		} else if exists {
			return nil, grouping.NewDuplicate(s.kind, "title", *req.Title)
		}
		existing.Title = strings.TrimSpace(*req.Title)
		dirty.Add("title")
	}
	if req.Code != nil {
		if exists, err := s.repo.ExistsByCode(ctx, integrity.NormalizeCode(*req.Code), id); err != nil {
			return nil, err
		} else if exists {
			return nil, grouping.NewDuplicate(s.kind, "code", *req.Code)
		}
		existing.Code = *req.Code
		dirty.Add("code")
	}
	if req.CategoryIDs != nil {
		ids, err := parseIDs(*req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		existing.CategoryIDs = ids
		dirty.Add("category_ids")
	}
	if req.CategoryTypeIDs != nil {
		ids, err := parseIDs(*req.CategoryTypeIDs)
		if err != nil {
			return nil, err
		}
		existing.CategoryTypeIDs = ids
		dirty.Add("category_type_ids")
	}
	if req.Status != nil {
		existing.Status = shared.Status(*req.Status)
		dirty.Add("status")
	}

	updated, err := s.commit(ctx, existing, dirty, s.repo.Update)
	if err != nil {
		return nil, err
	}

	return grouping.ToResponse(updated), nil
}

func (s *groupingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *grouping.StatusRequest) (*grouping.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, integrity.NewValidationFailed(err.Error())
	}

	status := req.Status
	update := &grouping.UpdateRequest{Status: &status}
	return s.Update(ctx, id, update)
}

func (s *groupingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
