package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"brandsite-backend/internal/domains/services"
	"brandsite-backend/internal/shared/query"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) services.Repository {
	return &postgresRepository{pool: pool}
}

const serviceColumns = `id, name, slug, description, short_description, icon, image, gallery,
	price, price_unit, is_popular, features, faqs, status, display_order,
	meta_title, meta_description, meta_keywords, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, s *services.Service) error {
	sql := `
		INSERT INTO services (
			id, name, slug, description, short_description, icon, image, gallery,
			price, price_unit, is_popular, features, faqs, status, display_order,
			meta_title, meta_description, meta_keywords, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20
		)
	`

	_, err := r.pool.Exec(ctx, sql,
		s.ID, s.Name, s.Slug, s.Description, s.ShortDescription, s.Icon, s.Image, pq.Array(s.Gallery),
		s.Price, s.PriceUnit, s.IsPopular, pq.Array(s.Features), s.FAQs, s.Status, s.Order,
		s.MetaTitle, s.MetaDescription, s.MetaKeywords, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return services.ErrSlugConflict
		}
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, s *services.Service) error {
	sql := `
		UPDATE services
		SET name = $1, slug = $2, description = $3, short_description = $4,
		    icon = $5, image = $6, gallery = $7, price = $8, price_unit = $9,
		    is_popular = $10, features = $11, faqs = $12, status = $13,
		    display_order = $14, meta_title = $15, meta_description = $16,
		    meta_keywords = $17, updated_at = $18
		WHERE id = $19
	`

	result, err := r.pool.Exec(ctx, sql,
		s.Name, s.Slug, s.Description, s.ShortDescription,
		s.Icon, s.Image, pq.Array(s.Gallery), s.Price, s.PriceUnit,
		s.IsPopular, pq.Array(s.Features), s.FAQs, s.Status,
		s.Order, s.MetaTitle, s.MetaDescription,
		s.MetaKeywords, s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return services.ErrSlugConflict
		}
		return fmt.Errorf("failed to update service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return services.ErrServiceNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if result.RowsAffected() == 0 {
		return services.ErrServiceNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*services.Service, error) {
	sql := fmt.Sprintf(`SELECT %s FROM services WHERE id = $1`, serviceColumns)
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*services.Service, error) {
	sql := fmt.Sprintf(`SELECT %s FROM services WHERE slug = $1`, serviceColumns)
	return r.getOne(ctx, sql, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, sql string, arg interface{}) (*services.Service, error) {
	var s services.Service
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&s.ID, &s.Name, &s.Slug, &s.Description, &s.ShortDescription, &s.Icon, &s.Image, pq.Array(&s.Gallery),
		&s.Price, &s.PriceUnit, &s.IsPopular, pq.Array(&s.Features), &s.FAQs, &s.Status, &s.Order,
		&s.MetaTitle, &s.MetaDescription, &s.MetaKeywords, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, services.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &s, nil
}

// List applies the filter set under the collection's fixed ordering:
// manual display order first, then popular items, then recency.
func (r *postgresRepository) List(ctx context.Context, filters []query.Filter, limit int) ([]services.Service, error) {
	params := query.Params{Filters: filters}
	where, args, argIndex := params.BuildWhere(1)

	sql := fmt.Sprintf(`
		SELECT %s FROM services
		WHERE %s
		ORDER BY display_order ASC, is_popular DESC, created_at DESC, id ASC
		LIMIT $%d
	`, serviceColumns, where, argIndex)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list services query failed: %w", err)
	}
	defer rows.Close()

	items := []services.Service{}
	for rows.Next() {
		var s services.Service
		err := rows.Scan(
			&s.ID, &s.Name, &s.Slug, &s.Description, &s.ShortDescription, &s.Icon, &s.Image, pq.Array(&s.Gallery),
			&s.Price, &s.PriceUnit, &s.IsPopular, pq.Array(&s.Features), &s.FAQs, &s.Status, &s.Order,
			&s.MetaTitle, &s.MetaDescription, &s.MetaKeywords, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM services WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM services WHERE slug = $1 AND id <> $2)`, slug, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
