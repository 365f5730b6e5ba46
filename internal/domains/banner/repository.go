package banner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for banners.
type Repository interface {
	Create(ctx context.Context, b *Banner) error
	Update(ctx context.Context, b *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Banner, error)

	// ListActive returns active banners for a page (and optionally a
	// position) whose schedule window covers now, ordered by display
	// order. An open start or end bound always passes; when both bounds
	// are set, both must hold.
	ListActive(ctx context.Context, page, position string, now time.Time) ([]Banner, error)

	// ListAll returns every banner for the admin console, scheduled or
	// not.
	ListAll(ctx context.Context) ([]Banner, error)
}

// Service is the banner logic consumed by the HTTP handler.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Banner, error)
	Update(ctx context.Context, id string, req UpdateBannerRequest) (*Banner, error)
	Delete(ctx context.Context, id string) error

	Active(ctx context.Context, req ActiveBannersRequest) ([]Banner, error)
	ListAll(ctx context.Context) ([]Banner, error)
}
