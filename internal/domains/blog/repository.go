package blog

import (
	"context"

	"github.com/google/uuid"

	"brandsite-backend/internal/shared/query"
)

// Repository is the persistence contract for the blogs collection. The
// slug column carries a uniqueness constraint; Create and Update
// surface a constraint violation as ErrSlugConflict so the service can
// re-probe and retry.
type Repository interface {
	Create(ctx context.Context, b *Blog) error
	Update(ctx context.Context, b *Blog) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)

	List(ctx context.Context, params query.Params) ([]ListItem, int, error)
	ListFeatured(ctx context.Context, limit int) ([]ListItem, error)
	Categories(ctx context.Context) ([]string, error)

	SlugExists(ctx context.Context, slug string) (bool, error)
	// SlugExistsExcept ignores the row identified by id, so an update
	// probe never collides with the blog being updated.
	SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
