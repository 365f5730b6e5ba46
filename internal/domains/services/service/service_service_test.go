package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsite-backend/internal/domains/services"
	"brandsite-backend/internal/shared/query"
	"brandsite-backend/pkg/cache"
)

type fakeRepo struct {
	items       map[uuid.UUID]*services.Service
	lastFilters []query.Filter
	lastLimit   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*services.Service{}}
}

func (r *fakeRepo) Create(ctx context.Context, s *services.Service) error {
	for _, existing := range r.items {
		if existing.Slug == s.Slug {
			return services.ErrSlugConflict
		}
	}
	clone := *s
	r.items[s.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, s *services.Service) error {
	if _, ok := r.items[s.ID]; !ok {
		return services.ErrServiceNotFound
	}
	clone := *s
	r.items[s.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return services.ErrServiceNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*services.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, services.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*services.Service, error) {
	for _, s := range r.items {
		if s.Slug == slug {
			clone := *s
			return &clone, nil
		}
	}
	return nil, services.ErrServiceNotFound
}

func (r *fakeRepo) List(ctx context.Context, filters []query.Filter, limit int) ([]services.Service, error) {
	r.lastFilters = filters
	r.lastLimit = limit
	out := []services.Service{}
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, s := range r.items {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error) {
	for itemID, s := range r.items {
		if itemID != id && s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func newTestBusiness(repo services.Repository) services.Business {
	return NewServiceBusiness(repo, cache.NewMemoryCache())
}

func createReq(name string) services.CreateInput {
	return services.CreateInput{
		CreateServiceRequest: services.CreateServiceRequest{
			Name:        name,
			Description: "a real description",
			Price:       "99.50",
		},
	}
}

func TestCreate_DefaultsAndSlug(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	s, err := biz.Create(context.Background(), createReq("Web Design"))
	require.NoError(t, err)

	assert.Equal(t, "web-design", s.Slug)
	assert.Equal(t, services.StatusActive, s.Status)
	assert.Equal(t, "hour", s.PriceUnit)
	assert.Equal(t, "99.5", s.Price.String())
	assert.NotNil(t, s.Gallery)
	assert.NotNil(t, s.Features)
	assert.NotNil(t, s.FAQs)
}

func TestCreate_SlugCollisionGetsSuffix(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	first, err := biz.Create(context.Background(), createReq("Consulting"))
	require.NoError(t, err)
	second, err := biz.Create(context.Background(), createReq("Consulting"))
	require.NoError(t, err)

	assert.Equal(t, "consulting", first.Slug)
	assert.Equal(t, "consulting-1", second.Slug)
}

func TestCreate_RejectsNegativePrice(t *testing.T) {
	biz := newTestBusiness(newFakeRepo())

	input := createReq("Web Design")
	input.Price = "-5"
	_, err := biz.Create(context.Background(), input)
	assert.ErrorIs(t, err, services.ErrInvalidPrice)

	input.Price = "not-a-number"
	_, err = biz.Create(context.Background(), input)
	assert.ErrorIs(t, err, services.ErrInvalidPrice)
}

func TestUpdate_NameChangeRegeneratesSlug(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	s, err := biz.Create(context.Background(), createReq("Old Name Here"))
	require.NoError(t, err)

	newName := "Fresh New Name"
	updated, err := biz.Update(context.Background(), s.ID.String(), services.UpdateServiceRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "fresh-new-name", updated.Slug)
}

func TestUpdate_RenameWithSameBaseKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	s, err := biz.Create(context.Background(), createReq("Web Design"))
	require.NoError(t, err)
	require.Equal(t, "web-design", s.Slug)

	newName := "Web  Design"
	updated, err := biz.Update(context.Background(), s.ID.String(), services.UpdateServiceRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "web-design", updated.Slug)
}

func TestGet_HidesInactiveFromPublic(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	input := createReq("Hidden Service")
	input.Status = services.StatusInactive
	s, err := biz.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = biz.Get(context.Background(), s.Slug, false)
	assert.ErrorIs(t, err, services.ErrServiceNotFound)

	got, err := biz.Get(context.Background(), s.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestList_PublicDefaultsToActive(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	_, err := biz.List(context.Background(), services.ListServicesRequest{Status: services.StatusInactive}, false)
	require.NoError(t, err)

	require.Len(t, repo.lastFilters, 1)
	assert.Equal(t, "status", repo.lastFilters[0].Column)
	assert.Equal(t, services.StatusActive, repo.lastFilters[0].Value)
}

func TestList_PrivilegedDefaultsToActive(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	_, err := biz.List(context.Background(), services.ListServicesRequest{}, true)
	require.NoError(t, err)

	require.Len(t, repo.lastFilters, 1)
	assert.Equal(t, "status", repo.lastFilters[0].Column)
	assert.Equal(t, services.StatusActive, repo.lastFilters[0].Value)
}

func TestList_PrivilegedStatusOverride(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	_, err := biz.List(context.Background(), services.ListServicesRequest{Status: services.StatusInactive}, true)
	require.NoError(t, err)

	require.Len(t, repo.lastFilters, 1)
	assert.Equal(t, services.StatusInactive, repo.lastFilters[0].Value)
}

func TestList_LimitCappedAt100(t *testing.T) {
	repo := newFakeRepo()
	biz := newTestBusiness(repo)

	popular := true
	_, err := biz.List(context.Background(), services.ListServicesRequest{Limit: 1000, IsPopular: &popular}, true)
	require.NoError(t, err)

	assert.Equal(t, 100, repo.lastLimit)
}
