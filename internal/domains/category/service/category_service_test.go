package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterdata-backend/internal/domains/category"
	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

type fakeCategoryRepo struct {
	byID    map[uuid.UUID]*category.Category
	creates int
	updates int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[uuid.UUID]*category.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *category.Category) (*category.Category, error) {
	f.creates++
	stored := *c
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, category.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range f.byID {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, category.ErrNotFound
}

func (f *fakeCategoryRepo) List(_ context.Context, _ category.ListFilter) ([]*category.Category, int, error) {
	var out []*category.Category
	for _, c := range f.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *category.Category) (*category.Category, error) {
	f.updates++
	if _, ok := f.byID[c.ID]; !ok {
		return nil, category.ErrNotFound
	}
	stored := *c
	stored.UpdatedAt = time.Now()
	f.byID[c.ID] = &stored
	clone := stored
	return &clone, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return category.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCategoryRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for id, c := range f.byID {
		if id != excludeID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) ExistsByCode(_ context.Context, code string, excludeID uuid.UUID) (bool, error) {
	for id, c := range f.byID {
		if id != excludeID && c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// fakeTypeRepo serves only the lookups the category service needs.
type fakeTypeRepo struct {
	categorytype.Repository
	byID map[uuid.UUID]*categorytype.CategoryType
}

func newFakeTypeRepo(types ...*categorytype.CategoryType) *fakeTypeRepo {
	f := &fakeTypeRepo{byID: make(map[uuid.UUID]*categorytype.CategoryType)}
	for _, ct := range types {
		f.byID[ct.ID] = ct
	}
	return f
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id uuid.UUID) (*categorytype.CategoryType, error) {
	ct, ok := f.byID[id]
	if !ok {
		return nil, categorytype.ErrNotFound
	}
	clone := *ct
	return &clone, nil
}

func (f *fakeTypeRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func strptr(s string) *string { return &s }

func ringsType() *categorytype.CategoryType {
	return &categorytype.CategoryType{
		ID:     uuid.New(),
		Name:   "Rings",
		Code:   "RNG",
		Slug:   "/jewellery/rings",
		Status: shared.StatusActive,
	}
}

func TestCreateDerivesSlugFromParentType(t *testing.T) {
	rings := ringsType()
	svc := NewCategoryService(newFakeCategoryRepo(), newFakeTypeRepo(rings))

	got, err := svc.Create(context.Background(), &category.CreateRequest{
		Name:           " Statement  Ring ",
		Code:           "sr",
		CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, "/jewellery/rings/statement-ring", got.Slug)
	assert.Equal(t, "SR", got.Code)
	assert.Equal(t, rings.ID, got.CategoryTypeID)
}

func TestCreateWithUnknownTypeFailsBeforePersist(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, newFakeTypeRepo())

	missing := uuid.New()
	_, err := svc.Create(context.Background(), &category.CreateRequest{
		Name:           "Statement Ring",
		Code:           "SR",
		CategoryTypeID: missing.String(),
	})
	require.Error(t, err)

	assert.True(t, integrity.IsReferenceNotFound(err))
	assert.Zero(t, repo.creates, "nothing persists when the reference fails")
}

func TestUpdateTypeOnlyKeepsSlug(t *testing.T) {
	rings := ringsType()
	necklaces := &categorytype.CategoryType{
		ID:   uuid.New(),
		Name: "Necklaces", Code: "NCK",
		Slug:   "/jewellery/necklaces",
		Status: shared.StatusActive,
	}
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, newFakeTypeRepo(rings, necklaces))
	ctx := context.Background()

	created, err := svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR", CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	moved, err := svc.Update(ctx, created.ID, &category.UpdateRequest{
		CategoryTypeID: strptr(necklaces.ID.String()),
	})
	require.NoError(t, err)

	assert.Equal(t, necklaces.ID, moved.CategoryTypeID)
	assert.Equal(t, "/jewellery/rings/statement-ring", moved.Slug)
}

func TestUpdateNameRederivesSlugAgainstCurrentType(t *testing.T) {
	rings := ringsType()
	necklaces := &categorytype.CategoryType{
		ID:   uuid.New(),
		Name: "Necklaces", Code: "NCK",
		Slug:   "/jewellery/necklaces",
		Status: shared.StatusActive,
	}
	svc := NewCategoryService(newFakeCategoryRepo(), newFakeTypeRepo(rings, necklaces))
	ctx := context.Background()

	created, err := svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR", CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	// moving and renaming in one request derives against the new type
	updated, err := svc.Update(ctx, created.ID, &category.UpdateRequest{
		Name:           strptr("Lariat Chain"),
		CategoryTypeID: strptr(necklaces.ID.String()),
	})
	require.NoError(t, err)

	assert.Equal(t, "/jewellery/necklaces/lariat-chain", updated.Slug)
}

func TestUpdateWithUnknownTypeFailsBeforePersist(t *testing.T) {
	rings := ringsType()
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, newFakeTypeRepo(rings))
	ctx := context.Background()

	created, err := svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR", CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &category.UpdateRequest{
		CategoryTypeID: strptr(uuid.New().String()),
	})
	require.Error(t, err)

	assert.True(t, integrity.IsReferenceNotFound(err))
	assert.Zero(t, repo.updates)
}

func TestStatusOnlyUpdateStillValidatesParent(t *testing.T) {
	rings := ringsType()
	repo := newFakeCategoryRepo()
	typeRepo := newFakeTypeRepo(rings)
	svc := NewCategoryService(repo, typeRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR", CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	// parent disappears, then a status flip revalidates the stored ref
	delete(typeRepo.byID, rings.ID)

	_, err = svc.UpdateStatus(ctx, created.ID, &category.StatusRequest{
		Status: string(shared.StatusInactive),
	})
	require.Error(t, err)
	assert.True(t, integrity.IsReferenceNotFound(err))
}

func TestCreateDuplicateName(t *testing.T) {
	rings := ringsType()
	svc := NewCategoryService(newFakeCategoryRepo(), newFakeTypeRepo(rings))
	ctx := context.Background()

	_, err := svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR", CategoryTypeID: rings.ID.String(),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &category.CreateRequest{
		Name: "Statement Ring", Code: "SR2", CategoryTypeID: rings.ID.String(),
	})
	require.Error(t, err)

	var de *category.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "CATEGORY_DUPLICATE", de.Code)
}
