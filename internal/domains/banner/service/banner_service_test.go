package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsite-backend/internal/domains/banner"
	"brandsite-backend/pkg/cache"
)

type fakeRepo struct {
	items        map[uuid.UUID]*banner.Banner
	lastPage     string
	lastPosition string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]*banner.Banner{}}
}

func (r *fakeRepo) Create(ctx context.Context, b *banner.Banner) error {
	clone := *b
	r.items[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, b *banner.Banner) error {
	if _, ok := r.items[b.ID]; !ok {
		return banner.ErrBannerNotFound
	}
	clone := *b
	r.items[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return banner.ErrBannerNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*banner.Banner, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, banner.ErrBannerNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) ListActive(ctx context.Context, page, position string, now time.Time) ([]banner.Banner, error) {
	r.lastPage = page
	r.lastPosition = position
	out := []banner.Banner{}
	for _, b := range r.items {
		if b.Page != page {
			continue
		}
		if position != "" && b.Position != position {
			continue
		}
		if b.VisibleAt(now) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]banner.Banner, error) {
	out := []banner.Banner{}
	for _, b := range r.items {
		out = append(out, *b)
	}
	return out, nil
}

func newTestService(repo banner.Repository) banner.Service {
	return NewBannerService(repo, cache.NewMemoryCache())
}

func createReq(title string) banner.CreateInput {
	return banner.CreateInput{
		CreateBannerRequest: banner.CreateBannerRequest{Title: title},
		Image:               "uploads/banners/hero.jpg",
	}
}

func TestCreate_Defaults(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Summer Sale"))
	require.NoError(t, err)

	assert.Equal(t, "home", b.Page)
	assert.Equal(t, "top", b.Position)
	assert.True(t, b.IsActive)
}

func TestCreate_RequiresImage(t *testing.T) {
	svc := newTestService(newFakeRepo())

	input := createReq("Summer Sale")
	input.Image = ""
	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, banner.ErrImageRequired)
}

func TestActive_DefaultsToHomePage(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Active(context.Background(), banner.ActiveBannersRequest{})
	require.NoError(t, err)

	assert.Equal(t, "home", repo.lastPage)
	assert.Equal(t, "", repo.lastPosition)
}

func TestActive_ExcludesOutOfWindowBanners(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	current, err := svc.Create(context.Background(), createReq("Current"))
	require.NoError(t, err)

	expired := createReq("Expired")
	end := time.Now().Add(-time.Hour)
	expired.EndDate = &end
	_, err = svc.Create(context.Background(), expired)
	require.NoError(t, err)

	upcoming := createReq("Upcoming")
	start := time.Now().Add(time.Hour)
	upcoming.StartDate = &start
	_, err = svc.Create(context.Background(), upcoming)
	require.NoError(t, err)

	items, err := svc.Active(context.Background(), banner.ActiveBannersRequest{})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, current.ID, items[0].ID)
}

func TestUpdate_DeactivationSticks(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Toggle Me"))
	require.NoError(t, err)

	off := false
	updated, err := svc.Update(context.Background(), b.ID.String(), banner.UpdateBannerRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	items, err := svc.Active(context.Background(), banner.ActiveBannersRequest{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDelete_UnknownID(t *testing.T) {
	svc := newTestService(newFakeRepo())

	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, banner.ErrBannerNotFound)

	err = svc.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, banner.ErrBannerNotFound)
}
