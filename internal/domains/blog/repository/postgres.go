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

	"brandsite-backend/internal/domains/blog"
	"brandsite-backend/internal/shared/query"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

const blogColumns = `id, title, slug, content, excerpt, featured_image, author, category,
	tags, status, published_at, views, meta_title, meta_description, meta_keywords,
	reading_time, is_featured, created_at, updated_at`

const listColumns = `id, title, slug, excerpt, featured_image, author, category,
	tags, status, published_at, views, reading_time, is_featured, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, b *blog.Blog) error {
	sql := `
		INSERT INTO blogs (
			id, title, slug, content, excerpt, featured_image, author, category,
			tags, status, published_at, views, meta_title, meta_description,
			meta_keywords, reading_time, is_featured, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19
		)
	`

	_, err := r.pool.Exec(ctx, sql,
		b.ID, b.Title, b.Slug, b.Content, b.Excerpt, b.FeaturedImage, b.Author, b.Category,
		pq.Array(b.Tags), b.Status, b.PublishedAt, b.Views, b.MetaTitle, b.MetaDescription,
		b.MetaKeywords, b.ReadingTime, b.IsFeatured, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isSlugConflict(err) {
			return blog.ErrSlugConflict
		}
		return fmt.Errorf("failed to insert blog: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *blog.Blog) error {
	sql := `
		UPDATE blogs
		SET title = $1, slug = $2, content = $3, excerpt = $4, featured_image = $5,
		    category = $6, tags = $7, status = $8, published_at = $9,
		    meta_title = $10, meta_description = $11, meta_keywords = $12,
		    reading_time = $13, is_featured = $14, updated_at = $15
		WHERE id = $16
	`

	result, err := r.pool.Exec(ctx, sql,
		b.Title, b.Slug, b.Content, b.Excerpt, b.FeaturedImage,
		b.Category, pq.Array(b.Tags), b.Status, b.PublishedAt,
		b.MetaTitle, b.MetaDescription, b.MetaKeywords,
		b.ReadingTime, b.IsFeatured, b.UpdatedAt,
		b.ID,
	)
	if err != nil {
		if isSlugConflict(err) {
			return blog.ErrSlugConflict
		}
		return fmt.Errorf("failed to update blog: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if result.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	sql := fmt.Sprintf(`SELECT %s FROM blogs WHERE id = $1`, blogColumns)
	return r.getOne(ctx, sql, id)
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	sql := fmt.Sprintf(`SELECT %s FROM blogs WHERE slug = $1`, blogColumns)
	return r.getOne(ctx, sql, slug)
}

func (r *postgresRepository) getOne(ctx context.Context, sql string, arg interface{}) (*blog.Blog, error) {
	var b blog.Blog
	err := r.pool.QueryRow(ctx, sql, arg).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &b.Excerpt, &b.FeaturedImage, &b.Author, &b.Category,
		pq.Array(&b.Tags), &b.Status, &b.PublishedAt, &b.Views, &b.MetaTitle, &b.MetaDescription,
		&b.MetaKeywords, &b.ReadingTime, &b.IsFeatured, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, blog.ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &b, nil
}

// List executes the query plan: one count query for the independent
// total, then the page itself. Listings never carry the full content.
func (r *postgresRepository) List(ctx context.Context, params query.Params) ([]blog.ListItem, int, error) {
	where, args, argIndex := params.BuildWhere(1)

	var total int
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM blogs WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	listSQL := fmt.Sprintf(`SELECT %s FROM blogs WHERE %s %s LIMIT $%d OFFSET $%d`,
		listColumns, where, params.OrderBy(), argIndex, argIndex+1)
	args = append(args, params.Limit, params.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs query failed: %w", err)
	}
	defer rows.Close()

	items, err := scanListItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]blog.ListItem, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM blogs
		WHERE is_featured = true AND status = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2
	`, listColumns)

	rows, err := r.pool.Query(ctx, sql, blog.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("featured blogs query failed: %w", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *postgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM blogs WHERE status = $1 ORDER BY category`,
		blog.StatusPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("categories query failed: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)`, slug, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE blogs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func scanListItems(rows pgx.Rows) ([]blog.ListItem, error) {
	items := []blog.ListItem{}
	for rows.Next() {
		var it blog.ListItem
		err := rows.Scan(
			&it.ID, &it.Title, &it.Slug, &it.Excerpt, &it.FeaturedImage, &it.Author, &it.Category,
			pq.Array(&it.Tags), &it.Status, &it.PublishedAt, &it.Views, &it.ReadingTime,
			&it.IsFeatured, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan blog row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func isSlugConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
