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

	"masterdata-backend/internal/domains/grouping"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/pkg/cache"
)

const cacheTTL = 15 * time.Minute

const selectColumns = "id, title, code, slug, category_ids, category_type_ids, status, created_at, updated_at"

// postgresRepository serves one grouping table selected by Kind.
type postgresRepository struct {
	kind  grouping.Kind
	table string
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a pgx-backed grouping repository bound
// to the given kind's table, with a redis read-through cache.
func NewPostgresRepository(kind grouping.Kind, pool *pgxpool.Pool, c cache.Cache) grouping.Repository {
	return &postgresRepository{kind: kind, table: kind.Table(), pool: pool, cache: c}
}

func (r *postgresRepository) cacheKey(id uuid.UUID) string {
	return string(r.kind) + ":" + id.String()
}

func (r *postgresRepository) slugCacheKey(slug string) string {
	return string(r.kind) + ":slug:" + slug
}

func scanGrouping(row pgx.Row) (*grouping.Grouping, error) {
	var g grouping.Grouping
	err := row.Scan(&g.ID, &g.Title, &g.Code, &g.Slug, &g.CategoryIDs,
		&g.CategoryTypeIDs, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if g.CategoryIDs == nil {
		g.CategoryIDs = []uuid.UUID{}
	}
	if g.CategoryTypeIDs == nil {
		g.CategoryTypeIDs = []uuid.UUID{}
	}
	return &g, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "slug"):
			return integrity.NewUniqueViolation("slug", err)
		case strings.Contains(pgErr.ConstraintName, "code"):
			return integrity.NewUniqueViolation("code", err)
		case strings.Contains(pgErr.ConstraintName, "title"):
			return integrity.NewUniqueViolation("title", err)
		default:
			return integrity.NewUniqueViolation("field", err)
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, g *grouping.Grouping) (*grouping.Grouping, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, code, slug, category_ids, category_type_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, r.table, selectColumns)

	created, err := scanGrouping(r.pool.QueryRow(ctx, query,
		g.Title, g.Code, g.Slug, g.CategoryIDs, g.CategoryTypeIDs, g.Status))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*grouping.Grouping, error) {
	cacheKey := r.cacheKey(id)

	var cached grouping.Grouping
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectColumns, r.table)
	g, err := scanGrouping(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, grouping.NewNotFound(r.kind)
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, g, cacheTTL)
	return g, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*grouping.Grouping, error) {
	cacheKey := r.slugCacheKey(slug)

	var cached grouping.Grouping
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE slug = $1", selectColumns, r.table)
	g, err := scanGrouping(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, grouping.NewNotFound(r.kind)
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, g, cacheTTL)
	return g, nil
}

func (r *postgresRepository) List(ctx context.Context, filter grouping.ListFilter) ([]*grouping.Grouping, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR code ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, selectColumns, r.table, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*grouping.Grouping
	for rows.Next() {
		g, err := scanGrouping(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *grouping.Grouping) (*grouping.Grouping, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $2, code = $3, slug = $4, category_ids = $5,
		    category_type_ids = $6, status = $7, updated_at = now()
		WHERE id = $1
		RETURNING %s`, r.table, selectColumns)

	updated, err := scanGrouping(r.pool.QueryRow(ctx, query,
		g.ID, g.Title, g.Code, g.Slug, g.CategoryIDs, g.CategoryTypeIDs, g.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, grouping.NewNotFound(r.kind)
		}
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx, g.ID)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return grouping.NewNotFound(r.kind)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE title = $1 AND id != $2)", r.table),
		title, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) ExistsByCode(ctx context.Context, code string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE code = $1 AND id != $2)", r.table),
		code, excludeID).Scan(&exists)
	return exists, err
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, r.cacheKey(id))
	_ = r.cache.DeletePattern(ctx, string(r.kind)+":slug:*")
}
