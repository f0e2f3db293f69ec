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

	"masterdata-backend/internal/domains/category"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/pkg/cache"
)

const (
	cacheKeyPrefix     = "category:"
	cacheSlugKeyPrefix = "category:slug:"
	cacheTTL           = 15 * time.Minute
)

const selectColumns = "id, name, code, slug, category_type_id, status, created_at, updated_at"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a pgx-backed category repository with a
// redis read-through cache.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) category.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Slug, &c.CategoryTypeID,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

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
		default:
			return integrity.NewUniqueViolation("field", err)
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO categories (name, code, slug, category_type_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, selectColumns)

	created, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.Name, c.Code, c.Slug, c.CategoryTypeID, c.Status))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	cacheKey := cacheKeyPrefix + id.String()

	var cached category.Category
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM categories WHERE id = $1", selectColumns)
	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, c, cacheTTL)
	return c, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	cacheKey := cacheSlugKeyPrefix + slug

	var cached category.Category
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM categories WHERE slug = $1", selectColumns)
	c, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, c, cacheTTL)
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, filter category.ListFilter) ([]*category.Category, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR code ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.CategoryTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("category_type_id = $%d", argPos))
		args = append(args, *filter.CategoryTypeID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM categories WHERE %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM categories
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, selectColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := fmt.Sprintf(`
		UPDATE categories
		SET name = $2, code = $3, slug = $4, category_type_id = $5,
		    status = $6, updated_at = now()
		WHERE id = $1
		RETURNING %s`, selectColumns)

	updated, err := scanCategory(r.pool.QueryRow(ctx, query,
		c.ID, c.Name, c.Code, c.Slug, c.CategoryTypeID, c.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx, c.ID)
	return updated, nil
}

// Delete removes the row only. Groupings referencing the id keep their
// arrays as-is until their next write revalidates them.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return category.ErrNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND id != $2)",
		name, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE code = $1 AND id != $2)",
		code, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, cacheKeyPrefix+id.String())
	_ = r.cache.DeletePattern(ctx, cacheSlugKeyPrefix+"*")
}
