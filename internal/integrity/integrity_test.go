package integrity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "rng", "RNG"},
		{"mixed case", "RnG01", "RNG01"},
		{"surrounding whitespace", "  st-99\t", "ST-99"},
		{"already normalized", "COL", "COL"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCode(tt.in))
		})
	}
}

func TestNormalizeCodeIdempotent(t *testing.T) {
	for _, code := range []string{" ring 7 ", "abC", "", "X—ø "} {
		once := NormalizeCode(code)
		assert.Equal(t, once, NormalizeCode(once))
	}
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Rings", "rings"},
		{"two words", "Statement Ring", "statement-ring"},
		{"whitespace runs collapse", "Gold   Plated\t Hoops", "gold-plated-hoops"},
		{"surrounding whitespace trimmed", "  Bridal Sets  ", "bridal-sets"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSlug(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, "--")
		})
	}
}

func TestCategoryTypeSlug(t *testing.T) {
	assert.Equal(t, "/jewellery/rings", CategoryTypeSlug("Rings"))
	assert.Equal(t, "/jewellery/ear-cuffs", CategoryTypeSlug("  Ear  Cuffs "))
}

func TestCategorySlug(t *testing.T) {
	got := CategorySlug("/jewellery/rings", "Statement Ring")
	assert.Equal(t, "/jewellery/rings/statement-ring", got)
}

func TestFieldSet(t *testing.T) {
	fs := Fields("name", "status")

	assert.True(t, fs.Has("name"))
	assert.True(t, fs.Has("status"))
	assert.False(t, fs.Has("code"))

	fs.Add("code")
	assert.True(t, fs.Has("code"))
	assert.Len(t, fs.Names(), 3)
}

type fakeResolver struct {
	existing map[uuid.UUID]bool
	calls    []Ref
	err      error
}

func (f *fakeResolver) Resolve(_ context.Context, ref Ref) (bool, error) {
	f.calls = append(f.calls, ref)
	if f.err != nil {
		return false, f.err
	}
	return f.existing[ref.ID], nil
}

func TestValidateRefs(t *testing.T) {
	ctx := context.Background()
	known := uuid.New()
	missing := uuid.New()

	t.Run("all resolve", func(t *testing.T) {
		r := &fakeResolver{existing: map[uuid.UUID]bool{known: true}}
		err := ValidateRefs(ctx, r,
			Ref{Kind: RefKindCategory, ID: known},
			Ref{Kind: RefKindCategoryType, ID: known},
		)
		assert.NoError(t, err)
		assert.Len(t, r.calls, 2)
	})

	t.Run("first unresolved aborts and names the kind", func(t *testing.T) {
		r := &fakeResolver{existing: map[uuid.UUID]bool{known: true}}
		err := ValidateRefs(ctx, r,
			Ref{Kind: RefKindCategory, ID: known},
			Ref{Kind: RefKindCategory, ID: missing},
			Ref{Kind: RefKindCategoryType, ID: known},
		)
		require.Error(t, err)
		assert.True(t, IsReferenceNotFound(err))

		var ie *Error
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, RefKindCategory, ie.RefKind)
		assert.Equal(t, missing.String(), ie.RefID)

		// the ref after the failing one is never checked
		assert.Len(t, r.calls, 2)
	})

	t.Run("resolver failure propagates unchanged", func(t *testing.T) {
		boom := errors.New("connection reset")
		r := &fakeResolver{err: boom}
		err := ValidateRefs(ctx, r, Ref{Kind: RefKindCategory, ID: known})
		assert.ErrorIs(t, err, boom)
		assert.False(t, IsReferenceNotFound(err))
	})
}

func TestPipelineRunStopsAtFirstFailure(t *testing.T) {
	var ran []string
	fail := NewValidationFailed("name is empty")

	err := Run(context.Background(),
		Stage{Name: "normalize", Run: func(context.Context) error {
			ran = append(ran, "normalize")
			return nil
		}},
		Stage{Name: "derive", Run: func(context.Context) error {
			ran = append(ran, "derive")
			return fail
		}},
		Stage{Name: "persist", Run: func(context.Context) error {
			ran = append(ran, "persist")
			return nil
		}},
	)

	assert.ErrorIs(t, err, fail)
	assert.Equal(t, []string{"normalize", "derive"}, ran)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"reference not found", NewReferenceNotFound(RefKindCategoryType, uuid.Nil.String()), 404, CodeReferenceNotFound},
		{"unique violation", NewUniqueViolation("slug", errors.New("duplicate key")), 409, CodeUniqueViolation},
		{"validation failed", NewValidationFailed("name is empty"), 400, CodeValidationFailed},
		{"unknown error", errors.New("disk full"), 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, code := MapToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestErrorStringIncludesCode(t *testing.T) {
	err := NewUniqueViolation("code", errors.New("23505"))
	assert.True(t, strings.HasPrefix(err.Error(), "[UNIQUE_VIOLATION]"))
	assert.Contains(t, err.Error(), "23505")
}
