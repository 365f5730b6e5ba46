package contact

import (
	"context"

	"github.com/google/uuid"

	"brandsite-backend/internal/shared/query"
)

// Repository is the persistence contract for contact submissions.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	List(ctx context.Context, params query.Params) ([]Contact, int, error)

	// ListForExport returns every contact matching the filter set, most
	// recent first, without pagination.
	ListForExport(ctx context.Context, filters []query.Filter) ([]Contact, error)
}

// Service is the contact logic consumed by the HTTP handler.
type Service interface {
	// Submit stores the form submission and enqueues the admin
	// notification email best-effort.
	Submit(ctx context.Context, input SubmitInput) (Receipt, error)

	List(ctx context.Context, req ListContactsRequest) (*ListContactsResult, query.Pagination, error)

	// Get returns one contact and marks a new submission as read.
	Get(ctx context.Context, id string) (*Contact, error)

	// Update applies triage fields. Entering the replied status stamps
	// repliedAt and repliedBy once; later updates never move them.
	Update(ctx context.Context, id string, req UpdateContactRequest, updatedBy string) (*Contact, error)

	Delete(ctx context.Context, id string) error

	// Export renders the filtered contact list as an xlsx workbook.
	Export(ctx context.Context, req ListContactsRequest) ([]byte, error)
}
