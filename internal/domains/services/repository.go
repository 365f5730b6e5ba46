package services

import (
	"context"

	"github.com/google/uuid"

	"brandsite-backend/internal/shared/query"
)

// Repository is the persistence contract for the services collection.
// The slug column carries a uniqueness constraint; Create and Update
// surface violations as ErrSlugConflict.
type Repository interface {
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)

	// List applies the filter set with the collection's fixed ordering
	// (order ASC, is_popular DESC, created_at DESC) and the given cap.
	List(ctx context.Context, filters []query.Filter, limit int) ([]Service, error)

	SlugExists(ctx context.Context, slug string) (bool, error)
	// SlugExistsExcept ignores the row identified by id, so an update
	// probe never collides with the service being updated.
	SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error)
}

// Business is the service-listing logic consumed by the HTTP handler.
type Business interface {
	Create(ctx context.Context, input CreateInput) (*Service, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (*Service, error)
	Delete(ctx context.Context, id string) error

	// Get resolves identifier as a UUID or a slug. Non-privileged
	// callers only see active services.
	Get(ctx context.Context, identifier string, privileged bool) (*Service, error)
	List(ctx context.Context, req ListServicesRequest, privileged bool) ([]Service, error)
}
