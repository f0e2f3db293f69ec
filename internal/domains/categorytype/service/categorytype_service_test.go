package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

// fakeRepo is an in-memory categorytype.Repository.
type fakeRepo struct {
	byID map[uuid.UUID]*categorytype.CategoryType
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*categorytype.CategoryType)}
}

func (f *fakeRepo) Create(_ context.Context, ct *categorytype.CategoryType) (*categorytype.CategoryType, error) {
	for _, existing := range f.byID {
		if existing.Slug == ct.Slug {
			return nil, integrity.NewUniqueViolation("slug", nil)
		}
	}
	stored := *ct
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*categorytype.CategoryType, error) {
	ct, ok := f.byID[id]
	if !ok {
		return nil, categorytype.ErrNotFound
	}
	clone := *ct
	return &clone, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*categorytype.CategoryType, error) {
	for _, ct := range f.byID {
		if ct.Slug == slug {
			clone := *ct
			return &clone, nil
		}
	}
	return nil, categorytype.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ categorytype.ListFilter) ([]*categorytype.CategoryType, int, error) {
	var out []*categorytype.CategoryType
	for _, ct := range f.byID {
		clone := *ct
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, ct *categorytype.CategoryType) (*categorytype.CategoryType, error) {
	if _, ok := f.byID[ct.ID]; !ok {
		return nil, categorytype.ErrNotFound
	}
	stored := *ct
	stored.UpdatedAt = time.Now()
	f.byID[ct.ID] = &stored
	clone := stored
	return &clone, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return categorytype.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeRepo) ExistsByName(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for id, ct := range f.byID {
		if id != excludeID && ct.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ExistsByCode(_ context.Context, code string, excludeID uuid.UUID) (bool, error) {
	for id, ct := range f.byID {
		if id != excludeID && ct.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func strptr(s string) *string { return &s }

func TestCreateDerivesSlugAndNormalizesCode(t *testing.T) {
	svc := NewCategoryTypeService(newFakeRepo())

	got, err := svc.Create(context.Background(), &categorytype.CreateRequest{
		Name: "  Ear  Cuffs ",
		Code: " ec ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ear  Cuffs", got.Name)
	assert.Equal(t, "EC", got.Code)
	assert.Equal(t, "/jewellery/ear-cuffs", got.Slug)
	assert.Equal(t, shared.StatusActive, got.Status)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := NewCategoryTypeService(newFakeRepo())

	_, err := svc.Create(context.Background(), &categorytype.CreateRequest{Code: "X"})
	require.Error(t, err)
	assert.True(t, integrity.IsValidationFailed(err))
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryTypeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &categorytype.CreateRequest{Name: "Rings", Code: "RNG"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &categorytype.CreateRequest{Name: "Rings", Code: "RNG2"})
	require.Error(t, err)

	var de *categorytype.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "CATEGORY_TYPE_DUPLICATE", de.Code)
}

func TestUpdateNameRederivesSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryTypeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &categorytype.CreateRequest{Name: "Rings", Code: "RNG"})
	require.NoError(t, err)
	require.Equal(t, "/jewellery/rings", created.Slug)

	updated, err := svc.Update(ctx, created.ID, &categorytype.UpdateRequest{
		Name: strptr("Wedding Rings"),
	})
	require.NoError(t, err)

	assert.Equal(t, "/jewellery/wedding-rings", updated.Slug)
	assert.Equal(t, "RNG", updated.Code)
}

func TestStatusOnlyUpdateLeavesSlugAndCodeUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryTypeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &categorytype.CreateRequest{Name: "Rings", Code: "RNG"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, &categorytype.StatusRequest{
		Status: string(shared.StatusInactive),
	})
	require.NoError(t, err)

	assert.Equal(t, shared.StatusInactive, updated.Status)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Code, updated.Code)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc := NewCategoryTypeService(newFakeRepo())

	_, err := svc.Update(context.Background(), uuid.New(), &categorytype.UpdateRequest{
		Name: strptr("Anything"),
	})
	require.Error(t, err)
	assert.True(t, categorytype.IsNotFound(err))
}

func TestSlugCollisionSurfacesAsUniqueViolation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryTypeService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, &categorytype.CreateRequest{Name: "Gold  Hoops", Code: "GH1"})
	require.NoError(t, err)

	// different name, same derived slug
	_, err = svc.Create(ctx, &categorytype.CreateRequest{Name: "Gold Hoops", Code: "GH2"})
	require.Error(t, err)
	assert.True(t, integrity.IsUniqueViolation(err))
}
