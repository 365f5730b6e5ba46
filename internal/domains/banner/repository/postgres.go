package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brandsite-backend/internal/domains/banner"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) banner.Repository {
	return &postgresRepository{pool: pool}
}

const bannerColumns = `id, title, subtitle, description, image, mobile_image,
	button_text, button_link, button2_text, button2_link, display_order, page,
	position, is_active, start_date, end_date, background_color, text_color,
	animation, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, b *banner.Banner) error {
	sql := `
		INSERT INTO banners (
			id, title, subtitle, description, image, mobile_image,
			button_text, button_link, button2_text, button2_link, display_order, page,
			position, is_active, start_date, end_date, background_color, text_color,
			animation, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20, $21
		)
	`

	_, err := r.pool.Exec(ctx, sql,
		b.ID, b.Title, b.Subtitle, b.Description, b.Image, b.MobileImage,
		b.ButtonText, b.ButtonLink, b.Button2Text, b.Button2Link, b.Order, b.Page,
		b.Position, b.IsActive, b.StartDate, b.EndDate, b.BackgroundColor, b.TextColor,
		b.Animation, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *banner.Banner) error {
	sql := `
		UPDATE banners
		SET title = $1, subtitle = $2, description = $3, image = $4, mobile_image = $5,
		    button_text = $6, button_link = $7, button2_text = $8, button2_link = $9,
		    display_order = $10, page = $11, position = $12, is_active = $13,
		    start_date = $14, end_date = $15, background_color = $16, text_color = $17,
		    animation = $18, updated_at = $19
		WHERE id = $20
	`

	result, err := r.pool.Exec(ctx, sql,
		b.Title, b.Subtitle, b.Description, b.Image, b.MobileImage,
		b.ButtonText, b.ButtonLink, b.Button2Text, b.Button2Link,
		b.Order, b.Page, b.Position, b.IsActive,
		b.StartDate, b.EndDate, b.BackgroundColor, b.TextColor,
		b.Animation, b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return banner.ErrBannerNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return banner.ErrBannerNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*banner.Banner, error) {
	sql := fmt.Sprintf(`SELECT %s FROM banners WHERE id = $1`, bannerColumns)

	var b banner.Banner
	err := r.pool.QueryRow(ctx, sql, id).Scan(scanTargets(&b)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, banner.ErrBannerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}
	return &b, nil
}

// ListActive requires the schedule window's bounds to hold together: an
// unset bound passes, a set bound must cover now.
func (r *postgresRepository) ListActive(ctx context.Context, page, position string, now time.Time) ([]banner.Banner, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM banners
		WHERE is_active = true
		  AND page = $1
		  AND ($2 = '' OR position = $2)
		  AND (start_date IS NULL OR start_date <= $3)
		  AND (end_date IS NULL OR end_date >= $3)
		ORDER BY display_order ASC, id ASC
	`, bannerColumns)

	rows, err := r.pool.Query(ctx, sql, page, position, now)
	if err != nil {
		return nil, fmt.Errorf("active banners query failed: %w", err)
	}
	defer rows.Close()

	return scanBanners(rows)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]banner.Banner, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM banners
		ORDER BY page ASC, display_order ASC, id ASC
	`, bannerColumns)

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list banners query failed: %w", err)
	}
	defer rows.Close()

	return scanBanners(rows)
}

func scanBanners(rows pgx.Rows) ([]banner.Banner, error) {
	items := []banner.Banner{}
	for rows.Next() {
		var b banner.Banner
		if err := rows.Scan(scanTargets(&b)...); err != nil {
			return nil, fmt.Errorf("scan banner row: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func scanTargets(b *banner.Banner) []interface{} {
	return []interface{}{
		&b.ID, &b.Title, &b.Subtitle, &b.Description, &b.Image, &b.MobileImage,
		&b.ButtonText, &b.ButtonLink, &b.Button2Text, &b.Button2Link, &b.Order, &b.Page,
		&b.Position, &b.IsActive, &b.StartDate, &b.EndDate, &b.BackgroundColor, &b.TextColor,
		&b.Animation, &b.CreatedAt, &b.UpdatedAt,
	}
}
