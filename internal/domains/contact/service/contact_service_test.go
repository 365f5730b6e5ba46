package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"brandsite-backend/internal/domains/contact"
	"brandsite-backend/internal/infrastructure/queue"
	"brandsite-backend/internal/shared/query"
)

type fakeRepo struct {
	items      map[uuid.UUID]*contact.Contact
	lastParams query.Params
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*contact.Contact{}}
}

func (r *fakeRepo) Create(ctx context.Context, c *contact.Contact) error {
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, c *contact.Contact) error {
	if _, ok := r.items[c.ID]; !ok {
		return contact.ErrContactNotFound
	}
	clone := *c
	r.items[c.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return contact.ErrContactNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, contact.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeRepo) List(ctx context.Context, params query.Params) ([]contact.Contact, int, error) {
	r.lastParams = params
	out := []contact.Contact{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListForExport(ctx context.Context, filters []query.Filter) ([]contact.Contact, error) {
	out := []contact.Contact{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

type fakeNotifier struct {
	payloads []queue.ContactEmailPayload
	err      error
}

func (n *fakeNotifier) EnqueueContactEmail(ctx context.Context, payload queue.ContactEmailPayload) error {
	if n.err != nil {
		return n.err
	}
	n.payloads = append(n.payloads, payload)
	return nil
}

func submitInput() contact.SubmitInput {
	return contact.SubmitInput{
		SubmitContactRequest: contact.SubmitContactRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "555-123-4567",
			Subject: "Quote request",
			Message: "I would like a quote for a website.",
		},
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
	}
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := NewContactService(repo, notifier)

	receipt, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", receipt.Name)
	assert.NotEqual(t, uuid.Nil, receipt.ID)

	stored := repo.items[receipt.ID]
	require.NotNil(t, stored)
	assert.Equal(t, contact.StatusNew, stored.Status)
	assert.Equal(t, contact.PriorityMedium, stored.Priority)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, "jane@example.com", notifier.payloads[0].Email)
}

func TestSubmit_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{err: errors.New("redis down")}
	svc := NewContactService(repo, notifier)

	receipt, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)
	assert.NotNil(t, repo.items[receipt.ID])
}

func TestSubmit_RejectsInvalidPayload(t *testing.T) {
	svc := NewContactService(newFakeRepo(), &fakeNotifier{})

	input := submitInput()
	input.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), input)
	assert.Error(t, err)

	input = submitInput()
	input.Phone = "abc"
	_, err = svc.Submit(context.Background(), input)
	assert.Error(t, err)
}

func TestGet_MarksNewAsRead(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, &fakeNotifier{})

	receipt, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	c, err := svc.Get(context.Background(), receipt.ID.String())
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, c.Status)
	assert.Equal(t, contact.StatusRead, repo.items[receipt.ID].Status)

	// A second open leaves the status alone.
	c, err = svc.Get(context.Background(), receipt.ID.String())
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, c.Status)
}

func TestUpdate_RepliedStampsAuditFieldsOnce(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, &fakeNotifier{})

	receipt, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	adminID := uuid.New()
	replied := contact.StatusReplied
	c, err := svc.Update(context.Background(), receipt.ID.String(), contact.UpdateContactRequest{Status: &replied}, adminID.String())
	require.NoError(t, err)

	require.NotNil(t, c.RepliedAt)
	require.NotNil(t, c.RepliedBy)
	assert.Equal(t, adminID, *c.RepliedBy)
	firstReply := *c.RepliedAt

	// Replying again does not move the stamp.
	otherAdmin := uuid.New()
	c, err = svc.Update(context.Background(), receipt.ID.String(), contact.UpdateContactRequest{Status: &replied}, otherAdmin.String())
	require.NoError(t, err)
	assert.Equal(t, firstReply, *c.RepliedAt)
	assert.Equal(t, adminID, *c.RepliedBy)
}

func TestList_FilterComposition(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, &fakeNotifier{})

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.List(context.Background(), contact.ListContactsRequest{
		Status:    contact.StatusNew,
		Priority:  contact.PriorityHigh,
		Search:    "quote",
		StartDate: &start,
	})
	require.NoError(t, err)

	params := repo.lastParams
	assert.Equal(t, 20, params.Limit)
	assert.True(t, params.HasEquality("status"))
	assert.True(t, params.HasEquality("priority"))
	assert.Len(t, params.Filters, 4)
}

func TestExport_ProducesWorkbook(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, &fakeNotifier{})

	_, err := svc.Submit(context.Background(), submitInput())
	require.NoError(t, err)

	data, err := svc.Export(context.Background(), contact.ListContactsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Jane Doe", rows[1][0])
}
