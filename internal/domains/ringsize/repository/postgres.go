package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"masterdata-backend/internal/domains/ringsize"
	"masterdata-backend/internal/integrity"
	"masterdata-backend/internal/shared"
	"masterdata-backend/pkg/cache"
	"masterdata-backend/pkg/database"
)

const (
	cacheKeyPrefix  = "ring_size:"
	cacheKeyDefault = "ring_size:default"
	cacheTTL        = 15 * time.Minute
)

const selectColumns = "id, name, code, description, status, is_default, created_at, updated_at"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a pgx-backed ring-size repository with
// a redis read-through cache.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) ringsize.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func scanRingSize(row pgx.Row) (*ringsize.RingSize, error) {
	var rs ringsize.RingSize
	err := row.Scan(&rs.ID, &rs.Name, &rs.Code, &rs.Description,
		&rs.Status, &rs.IsDefault, &rs.CreatedAt, &rs.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return integrity.NewUniqueViolation("name", err)
	}
	return err
}

func insertQuery() string {
	return fmt.Sprintf(`
		INSERT INTO ring_sizes (name, code, description, status, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, selectColumns)
}

func updateQuery() string {
	return fmt.Sprintf(`
		UPDATE ring_sizes
		SET name = $2, code = $3, description = $4, status = $5,
		    is_default = $6, updated_at = now()
		WHERE id = $1
		RETURNING %s`, selectColumns)
}

func (r *postgresRepository) Create(ctx context.Context, rs *ringsize.RingSize) (*ringsize.RingSize, error) {
	created, err := scanRingSize(r.pool.QueryRow(ctx, insertQuery(),
		rs.Name, rs.Code, rs.Description, rs.Status, rs.IsDefault))
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx)
	return created, nil
}

// CreateAsDefault demotes every current default and inserts the new
// row in one transaction, so readers never observe two active
// defaults committed by this path.
func (r *postgresRepository) CreateAsDefault(ctx context.Context, rs *ringsize.RingSize) (*ringsize.RingSize, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*ringsize.RingSize, error) {
		_, err := tx.Exec(ctx,
			"UPDATE ring_sizes SET is_default = $1, updated_at = now() WHERE is_default = $2",
			shared.StatusInactive, shared.StatusActive)
		if err != nil {
			return nil, err
		}
		return scanRingSize(tx.QueryRow(ctx, insertQuery(),
			rs.Name, rs.Code, rs.Description, rs.Status, rs.IsDefault))
	})
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*ringsize.RingSize, error) {
	cacheKey := cacheKeyPrefix + id.String()

	var cached ringsize.RingSize
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM ring_sizes WHERE id = $1", selectColumns)
	rs, err := scanRingSize(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ringsize.ErrNotFound
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, rs, cacheTTL)
	return rs, nil
}

func (r *postgresRepository) GetDefault(ctx context.Context) (*ringsize.RingSize, error) {
	var cached ringsize.RingSize
	if found, err := r.cache.Get(ctx, cacheKeyDefault, &cached); err == nil && found {
		return &cached, nil
	}

	query := fmt.Sprintf("SELECT %s FROM ring_sizes WHERE is_default = $1 LIMIT 1", selectColumns)
	rs, err := scanRingSize(r.pool.QueryRow(ctx, query, shared.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ringsize.ErrNotFound
		}
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKeyDefault, rs, cacheTTL)
	return rs, nil
}

func (r *postgresRepository) List(ctx context.Context, filter ringsize.ListFilter) ([]*ringsize.RingSize, int, error) {
	where := "1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		where = fmt.Sprintf("status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ring_sizes WHERE %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM ring_sizes
		WHERE %s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d`, selectColumns, where, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*ringsize.RingSize
	for rows.Next() {
		rs, err := scanRingSize(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, rs *ringsize.RingSize) (*ringsize.RingSize, error) {
	updated, err := scanRingSize(r.pool.QueryRow(ctx, updateQuery(),
		rs.ID, rs.Name, rs.Code, rs.Description, rs.Status, rs.IsDefault))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ringsize.ErrNotFound
		}
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx)
	return updated, nil
}

// UpdateAsDefault demotes every other default and updates the row in
// one transaction.
func (r *postgresRepository) UpdateAsDefault(ctx context.Context, rs *ringsize.RingSize) (*ringsize.RingSize, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*ringsize.RingSize, error) {
		_, err := tx.Exec(ctx,
			"UPDATE ring_sizes SET is_default = $1, updated_at = now() WHERE is_default = $2 AND id != $3",
			shared.StatusInactive, shared.StatusActive, rs.ID)
		if err != nil {
			return nil, err
		}
		return scanRingSize(tx.QueryRow(ctx, updateQuery(),
			rs.ID, rs.Name, rs.Code, rs.Description, rs.Status, rs.IsDefault))
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ringsize.ErrNotFound
		}
		return nil, mapUniqueViolation(err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM ring_sizes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ringsize.ErrNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name decimal.Decimal, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM ring_sizes WHERE name = $1 AND id != $2)",
		name, excludeID).Scan(&exists)
	return exists, err
}

// invalidate drops every cached ring size. Default writes touch
// multiple rows, so per-key invalidation is not enough.
func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, cacheKeyPrefix+"*")
}
