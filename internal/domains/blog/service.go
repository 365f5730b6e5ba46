package blog

import (
	"context"

	"brandsite-backend/internal/shared/query"
)

// Service is the blog business-logic contract consumed by the HTTP
// handler.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Blog, error)
	Update(ctx context.Context, id string, req UpdateBlogRequest) (*Blog, error)
	Delete(ctx context.Context, id string) error

	// Get resolves identifier as a UUID or a slug. Non-privileged
	// callers only see published blogs; each successful read counts a
	// view.
	Get(ctx context.Context, identifier string, privileged bool) (*Blog, error)

	List(ctx context.Context, req ListBlogsRequest, privileged bool) (*ListBlogsResult, query.Pagination, error)
	Featured(ctx context.Context) ([]ListItem, error)
	Categories(ctx context.Context) ([]string, error)
}
