package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"masterdata-backend/internal/domains/categorytype"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/pkg/cache"
)

// postgresRepository implements categorytype.Repository on pgx with a
// redis read-through cache on single-record lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates the category-type repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) categorytype.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	cacheKeyPrefix     = "category_type:"
	cacheSlugKeyPrefix = "category_type:slug:"
	cacheTTL           = 15 * time.Minute
)

const selectColumns = "id, name, code, slug, status, created_at, updated_at"

func scanCategoryType(row pgx.Row) (*categorytype.CategoryType, error) {
	var ct categorytype.CategoryType
	err := row.Scan(&ct.ID, &ct.Name, &ct.Code, &ct.Slug, &ct.Status, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// mapUniqueViolation turns a 23505 on one of the unique indexes into a
// pipeline error naming the colliding field.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "slug"):
			return integrity.NewUniqueViolation("slug", err)
		case strings.Contains(pgErr.ConstraintName, "code"):
			return integrity.NewUniqueViolation("code", err)
		case strings.Contains(pgErr.ConstraintName, "name"):
			return integrity.NewUniqueViolation("name", err)
		}
		return integrity.NewUniqueViolation("record", err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, ct *categorytype.CategoryType) (*categorytype.CategoryType, error) {
	query := `
        INSERT INTO category_types (name, code, slug, status)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + selectColumns

	created, err := scanCategoryType(r.pool.QueryRow(ctx, query, ct.Name, ct.Code, ct.Slug, ct.Status))
	if err != nil {
		if uerr := mapUniqueViolation(err); uerr != nil {
			return nil, uerr
		}
		return nil, fmt.Errorf("failed to create category type: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*categorytype.CategoryType, error) {
	cacheKey := cacheKeyPrefix + id.String()

	var cached categorytype.CategoryType
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + selectColumns + ` FROM category_types WHERE id = $1`

	ct, err := scanCategoryType(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categorytype.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category type by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, ct, cacheTTL)
	return ct, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*categorytype.CategoryType, error) {
	cacheKey := cacheSlugKeyPrefix + slug

	var cached categorytype.CategoryType
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + selectColumns + ` FROM category_types WHERE slug = $1`

	ct, err := scanCategoryType(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categorytype.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category type by slug: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, ct, cacheTTL)
	return ct, nil
}

func (r *postgresRepository) List(ctx context.Context, filter categorytype.ListFilter) ([]*categorytype.CategoryType, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argn := 1

	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, filter.Status)
		argn++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argn)
		args = append(args, "%"+filter.Search+"%")
		argn++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM category_types " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count category types: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM category_types %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		selectColumns, where, argn, argn+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list category types: %w", err)
	}
	defer rows.Close()

	var result []*categorytype.CategoryType
	for rows.Next() {
		ct, err := scanCategoryType(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan category type: %w", err)
		}
		result = append(result, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read category types: %w", err)
	}

	return result, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, ct *categorytype.CategoryType) (*categorytype.CategoryType, error) {
	query := `
        UPDATE category_types
        SET name = $2, code = $3, slug = $4, status = $5, updated_at = now()
        WHERE id = $1
        RETURNING ` + selectColumns

	updated, err := scanCategoryType(r.pool.QueryRow(ctx, query, ct.ID, ct.Name, ct.Code, ct.Slug, ct.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, categorytype.ErrNotFound
		}
		if uerr := mapUniqueViolation(err); uerr != nil {
			return nil, uerr
		}
		return nil, fmt.Errorf("failed to update category type: %w", err)
	}

	r.invalidate(ctx, ct.ID)
	return updated, nil
}

// Delete hard-deletes the record. There is deliberately no cascade:
// dependent categories keep their reference and are rejected on their
// next write by the referential validator.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM category_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return categorytype.ErrNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM category_types WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category type existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM category_types WHERE name = $1 AND id <> $2)`
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category type name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM category_types WHERE code = $1 AND id <> $2)`
	if err := r.pool.QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category type code: %w", err)
	}
	return exists, nil
}

// invalidate drops the cached record. Slug keys are cleared by pattern
// because the pre-update slug is not known here and a rename must not
// leave a stale entry under the old slug.
func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, cacheKeyPrefix+id.String())
	_ = r.cache.DeletePattern(ctx, cacheSlugKeyPrefix+"*")
}
