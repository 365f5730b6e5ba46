package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"brandsite-backend/internal/domains/contact"
	"brandsite-backend/internal/infrastructure/queue"
	"brandsite-backend/internal/shared/query"
	"brandsite-backend/pkg/logger"
)

const defaultListLimit = 20

var contactSortable = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"priority":   true,
	"status":     true,
}

// Notifier enqueues the admin notification job.
type Notifier interface {
	EnqueueContactEmail(ctx context.Context, payload queue.ContactEmailPayload) error
}

type contactService struct {
	repo     contact.Repository
	notifier Notifier
}

func NewContactService(repo contact.Repository, notifier Notifier) contact.Service {
	return &contactService{repo: repo, notifier: notifier}
}

func (s *contactService) Submit(ctx context.Context, input contact.SubmitInput) (contact.Receipt, error) {
	if err := input.Validate(); err != nil {
		return contact.Receipt{}, err
	}

	now := time.Now()
	c := &contact.Contact{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Service:   input.Service,
		Status:    contact.StatusNew,
		Priority:  contact.PriorityMedium,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return contact.Receipt{}, err
	}

	// Notification is best-effort; the submission already succeeded.
	err := s.notifier.EnqueueContactEmail(ctx, queue.ContactEmailPayload{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		Service:   c.Service,
		IPAddress: c.IPAddress,
		UserAgent: c.UserAgent,
	})
	if err != nil {
		logger.Warn("failed to enqueue contact notification", err)
	}

	return c.Receipt(), nil
}

func (s *contactService) List(ctx context.Context, req contact.ListContactsRequest) (*contact.ListContactsResult, query.Pagination, error) {
	if err := req.Validate(); err != nil {
		return nil, query.Pagination{}, err
	}

	params := query.Params{
		Page:    req.Page,
		Limit:   req.Limit,
		Filters: buildFilters(req),
	}
	params.Normalize(defaultListLimit, contactSortable)

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	return &contact.ListContactsResult{Items: items, Total: total},
		query.NewPagination(params.Page, params.Limit, total), nil
}

func buildFilters(req contact.ListContactsRequest) []query.Filter {
	filters := []query.Filter{}
	if req.Status != "" {
		filters = append(filters, query.Eq("status", req.Status))
	}
	if req.Priority != "" {
		filters = append(filters, query.Eq("priority", req.Priority))
	}
	if req.Search != "" {
		filters = append(filters, query.Search(req.Search, "name", "email", "subject", "message"))
	}
	if req.StartDate != nil || req.EndDate != nil {
		var min, max interface{}
		if req.StartDate != nil {
			min = *req.StartDate
		}
		if req.EndDate != nil {
			max = *req.EndDate
		}
		filters = append(filters, query.Between("created_at", min, max))
	}
	return filters
}

func (s *contactService) Get(ctx context.Context, id string) (*contact.Contact, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, contact.ErrContactNotFound
	}

	c, err := s.repo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	// First open moves the submission out of the new state.
	if c.Status == contact.StatusNew {
		c.Status = contact.StatusRead
		c.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *contactService) Update(ctx context.Context, id string, req contact.UpdateContactRequest, updatedBy string) (*contact.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, contact.ErrContactNotFound
	}

	c, err := s.repo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	// Entering replied stamps the reply audit fields exactly once.
	if c.Status == contact.StatusReplied && c.RepliedAt == nil {
		now := time.Now()
		c.RepliedAt = &now
		if adminID, err := uuid.Parse(updatedBy); err == nil {
			c.RepliedBy = &adminID
		}
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return contact.ErrContactNotFound
	}
	return s.repo.Delete(ctx, contactID)
}

// Export renders the filtered contacts as a one-sheet xlsx workbook.
func (s *contactService) Export(ctx context.Context, req contact.ListContactsRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.ListForExport(ctx, buildFilters(req))
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Phone", "Subject", "Message", "Service", "Status", "Priority", "Submitted"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, c := range items {
		values := []interface{}{
			c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Service,
			c.Status, c.Priority, c.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
