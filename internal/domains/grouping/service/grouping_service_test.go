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
	"masterdata-backend/internal/domains/grouping"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
)

type fakeGroupingRepo struct {
	byID   map[uuid.UUID]*grouping.Grouping
	kind   grouping.Kind
	writes int
}

func newFakeGroupingRepo(kind grouping.Kind) *fakeGroupingRepo {
	return &fakeGroupingRepo{byID: make(map[uuid.UUID]*grouping.Grouping), kind: kind}
}

func (f *fakeGroupingRepo) Create(_ context.Context, g *grouping.Grouping) (*grouping.Grouping, error) {
	f.writes++
	stored := *g
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (f *fakeGroupingRepo) GetByID(_ context.Context, id uuid.UUID) (*grouping.Grouping, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, grouping.NewNotFound(f.kind)
	}
	clone := *g
	return &clone, nil
}

func (f *fakeGroupingRepo) GetBySlug(_ context.Context, slug string) (*grouping.Grouping, error) {
	for _, g := range f.byID {
		if g.Slug == slug {
			clone := *g
			return &clone, nil
		}
	}
	return nil, grouping.NewNotFound(f.kind)
}

func (f *fakeGroupingRepo) List(_ context.Context, _ grouping.ListFilter) ([]*grouping.Grouping, int, error) {
	var out []*grouping.Grouping
	for _, g := range f.byID {
		clone := *g
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeGroupingRepo) Update(_ context.Context, g *grouping.Grouping) (*grouping.Grouping, error) {
	f.writes++
	if _, ok := f.byID[g.ID]; !ok {
		return nil, grouping.NewNotFound(f.kind)
	}
	stored := *g
	stored.UpdatedAt = time.Now()
	f.byID[g.ID] = &stored
	clone := stored
	return &clone, nil
}

func (f *fakeGroupingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return grouping.NewNotFound(f.kind)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeGroupingRepo) ExistsByTitle(_ context.Context, title string, excludeID uuid.UUID) (bool, error) {
	for id, g := range f.byID {
		if id != excludeID && g.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupingRepo) ExistsByCode(_ context.Context, code string, excludeID uuid.UUID) (bool, error) {
	for id, g := range f.byID {
		if id != excludeID && g.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	category.Repository
	ids map[uuid.UUID]bool
}

func (f *fakeCategoryRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

type fakeTypeRepo struct {
	categorytype.Repository
	ids map[uuid.UUID]bool
}

func (f *fakeTypeRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

type fixture struct {
	repo    *fakeGroupingRepo
	svc     grouping.Service
	catIDs  []uuid.UUID
	typeIDs []uuid.UUID
}

func newFixture(t *testing.T, kind grouping.Kind) *fixture {
	t.Helper()

	catIDs := []uuid.UUID{uuid.New(), uuid.New()}
	typeIDs := []uuid.UUID{uuid.New()}

	catRepo := &fakeCategoryRepo{ids: map[uuid.UUID]bool{catIDs[0]: true, catIDs[1]: true}}
	typeRepo := &fakeTypeRepo{ids: map[uuid.UUID]bool{typeIDs[0]: true}}

	repo := newFakeGroupingRepo(kind)
	return &fixture{
		repo:    repo,
		svc:     NewGroupingService(kind, repo, catRepo, typeRepo),
		catIDs:  catIDs,
		typeIDs: typeIDs,
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func strptr(s string) *string { return &s }

func TestCreateStyleDerivesSlugFromTitle(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)

	got, err := f.svc.Create(context.Background(), &grouping.CreateRequest{
		Title:           "  Art   Deco ",
		Code:            "ad",
		CategoryIDs:     idStrings(f.catIDs),
		CategoryTypeIDs: idStrings(f.typeIDs),
	})
	require.NoError(t, err)

	assert.Equal(t, "art-deco", got.Slug)
	assert.Equal(t, "AD", got.Code)
	assert.Equal(t, "Art   Deco", got.Title)
	assert.Equal(t, f.catIDs, got.CategoryIDs)
	assert.Equal(t, shared.StatusActive, got.Status)
}

func TestCreateWithEmptyListsSucceeds(t *testing.T) {
	f := newFixture(t, grouping.KindCollection)

	got, err := f.svc.Create(context.Background(), &grouping.CreateRequest{
		Title: "Summer Edit",
		Code:  "SE",
	})
	require.NoError(t, err)

	assert.Empty(t, got.CategoryIDs)
	assert.Empty(t, got.CategoryTypeIDs)
}

func TestCreateReportsFirstMissingCategoryInListOrder(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)

	missingA := uuid.New()
	missingB := uuid.New()
	ids := []string{f.catIDs[0].String(), missingA.String(), missingB.String()}

	_, err := f.svc.Create(context.Background(), &grouping.CreateRequest{
		Title:           "Art Deco",
		Code:            "AD",
		CategoryIDs:     ids,
		CategoryTypeIDs: idStrings(f.typeIDs),
	})
	require.Error(t, err)

	var ie *integrity.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, integrity.CodeReferenceNotFound, ie.Code)
	assert.Equal(t, integrity.RefKindCategory, ie.RefKind)
	assert.Equal(t, missingA.String(), ie.RefID)
	assert.Zero(t, f.repo.writes)
}

func TestCategoryFailureReportedBeforeTypeFailure(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)

	missingCat := uuid.New()
	missingType := uuid.New()

	_, err := f.svc.Create(context.Background(), &grouping.CreateRequest{
		Title:           "Art Deco",
		Code:            "AD",
		CategoryIDs:     []string{missingCat.String()},
		CategoryTypeIDs: []string{missingType.String()},
	})
	require.Error(t, err)

	var ie *integrity.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, integrity.RefKindCategory, ie.RefKind)
	assert.Equal(t, missingCat.String(), ie.RefID)
}

func TestCreateReportsMissingType(t *testing.T) {
	f := newFixture(t, grouping.KindCollection)

	missingType := uuid.New()
	_, err := f.svc.Create(context.Background(), &grouping.CreateRequest{
		Title:           "Summer Edit",
		Code:            "SE",
		CategoryIDs:     idStrings(f.catIDs),
		CategoryTypeIDs: []string{missingType.String()},
	})
	require.Error(t, err)

	var ie *integrity.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, integrity.RefKindCategoryType, ie.RefKind)
	assert.Equal(t, missingType.String(), ie.RefID)
}

func TestStatusOnlyUpdateRevalidatesStoredRefs(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &grouping.CreateRequest{
		Title:           "Art Deco",
		Code:            "AD",
		CategoryIDs:     idStrings(f.catIDs),
		CategoryTypeIDs: idStrings(f.typeIDs),
	})
	require.NoError(t, err)

	// one referenced category disappears; the next write must notice
	stored := f.repo.byID[created.ID]
	catRepoBroken := &fakeCategoryRepo{ids: map[uuid.UUID]bool{f.catIDs[0]: true}}
	typeRepo := &fakeTypeRepo{ids: map[uuid.UUID]bool{f.typeIDs[0]: true}}
	svc := NewGroupingService(grouping.KindStyle, f.repo, catRepoBroken, typeRepo)

	_, err = svc.UpdateStatus(ctx, stored.ID, &grouping.StatusRequest{
		Status: string(shared.StatusInactive),
	})
	require.Error(t, err)

	var ie *integrity.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, integrity.CodeReferenceNotFound, ie.Code)
	assert.Equal(t, f.catIDs[1].String(), ie.RefID)
}

func TestUpdateClearsListsWithEmptySlice(t *testing.T) {
	f := newFixture(t, grouping.KindCollection)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &grouping.CreateRequest{
		Title:           "Summer Edit",
		Code:            "SE",
		CategoryIDs:     idStrings(f.catIDs),
		CategoryTypeIDs: idStrings(f.typeIDs),
	})
	require.NoError(t, err)

	empty := []string{}
	updated, err := f.svc.Update(ctx, created.ID, &grouping.UpdateRequest{
		CategoryIDs: &empty,
	})
	require.NoError(t, err)

	assert.Empty(t, updated.CategoryIDs)
	assert.Equal(t, f.typeIDs, updated.CategoryTypeIDs)
}

func TestUpdateTitleRederivesSlug(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, &grouping.CreateRequest{
		Title: "Art Deco",
		Code:  "AD",
	})
	require.NoError(t, err)
	require.Equal(t, "art-deco", created.Slug)

	updated, err := f.svc.Update(ctx, created.ID, &grouping.UpdateRequest{
		Title: strptr("Mid Century Modern"),
	})
	require.NoError(t, err)

	assert.Equal(t, "mid-century-modern", updated.Slug)
	assert.Equal(t, "AD", updated.Code)
}

func TestCreateDuplicateTitle(t *testing.T) {
	f := newFixture(t, grouping.KindStyle)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &grouping.CreateRequest{Title: "Art Deco", Code: "AD"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, &grouping.CreateRequest{Title: "Art Deco", Code: "AD2"})
	require.Error(t, err)

	var de *grouping.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "STYLE_DUPLICATE", de.Code)
}
