package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandsite-backend/internal/domains/blog"
	"brandsite-backend/internal/shared/query"
	"brandsite-backend/pkg/cache"
)

// fakeRepo is an in-memory blog.Repository good enough for service
// behavior tests.
type fakeRepo struct {
	blogs      map[uuid.UUID]*blog.Blog
	lastParams query.Params
	listErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{blogs: map[uuid.UUID]*blog.Blog{}}
}

func (r *fakeRepo) Create(ctx context.Context, b *blog.Blog) error {
	for _, existing := range r.blogs {
		if existing.Slug == b.Slug {
			return blog.ErrSlugConflict
		}
	}
	clone := *b
	r.blogs[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, b *blog.Blog) error {
	if _, ok := r.blogs[b.ID]; !ok {
		return blog.ErrBlogNotFound
	}
	for id, existing := range r.blogs {
		if id != b.ID && existing.Slug == b.Slug {
			return blog.ErrSlugConflict
		}
	}
	clone := *b
	r.blogs[b.ID] = &clone
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.blogs[id]; !ok {
		return blog.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, blog.ErrBlogNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug {
			clone := *b
			return &clone, nil
		}
	}
	return nil, blog.ErrBlogNotFound
}

func (r *fakeRepo) List(ctx context.Context, params query.Params) ([]blog.ListItem, int, error) {
	r.lastParams = params
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	items := []blog.ListItem{}
	for _, b := range r.blogs {
		items = append(items, blog.ListItem{ID: b.ID, Title: b.Title, Slug: b.Slug, Status: b.Status})
	}
	total := len(items)
	offset := params.Offset()
	if offset > total {
		offset = total
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}
	return items[offset:end], total, nil
}

func (r *fakeRepo) ListFeatured(ctx context.Context, limit int) ([]blog.ListItem, error) {
	items := []blog.ListItem{}
	for _, b := range r.blogs {
		if b.IsFeatured && b.Status == blog.StatusPublished {
			items = append(items, blog.ListItem{ID: b.ID, Title: b.Title, Slug: b.Slug})
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, b := range r.blogs {
		if b.Status == blog.StatusPublished && !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	return categories, nil
}

func (r *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, b := range r.blogs {
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) SlugExistsExcept(ctx context.Context, slug string, id uuid.UUID) (bool, error) {
	for blogID, b := range r.blogs {
		if blogID != id && b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	b, ok := r.blogs[id]
	if !ok {
		return blog.ErrBlogNotFound
	}
	b.Views++
	return nil
}

func newTestService(repo blog.Repository) blog.Service {
	return NewBlogService(repo, cache.NewMemoryCache())
}

func createReq(title string) blog.CreateInput {
	return blog.CreateInput{
		CreateBlogRequest: blog.CreateBlogRequest{
			Title:    title,
			Content:  "some real content here",
			Category: "news",
			Status:   blog.StatusPublished,
		},
		Author: "editor@example.com",
	}
}

func TestCreate_GeneratesSlugAndDerivedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Our Launch Day"))
	require.NoError(t, err)

	assert.Equal(t, "our-launch-day", b.Slug)
	assert.Equal(t, 1, b.ReadingTime)
	require.NotNil(t, b.PublishedAt)
	assert.WithinDuration(t, time.Now(), *b.PublishedAt, 5*time.Second)
}

func TestCreate_SlugCollisionGetsSuffix(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	first, err := svc.Create(context.Background(), createReq("Our Launch"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), createReq("Our Launch"))
	require.NoError(t, err)
	third, err := svc.Create(context.Background(), createReq("Our Launch"))
	require.NoError(t, err)

	assert.Equal(t, "our-launch", first.Slug)
	assert.Equal(t, "our-launch-1", second.Slug)
	assert.Equal(t, "our-launch-2", third.Slug)
}

func TestCreate_RejectsInvalidPayload(t *testing.T) {
	svc := newTestService(newFakeRepo())

	input := createReq("Hi")
	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
}

func TestUpdate_TitleChangeRegeneratesSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Original Title"))
	require.NoError(t, err)

	newTitle := "A Better Title"
	updated, err := svc.Update(context.Background(), b.ID.String(), blog.UpdateBlogRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "a-better-title", updated.Slug)
}

func TestUpdate_UnchangedTitleKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Stable Title"))
	require.NoError(t, err)

	excerpt := "new excerpt"
	updated, err := svc.Update(context.Background(), b.ID.String(), blog.UpdateBlogRequest{Excerpt: &excerpt})
	require.NoError(t, err)

	assert.Equal(t, "stable-title", updated.Slug)
	assert.Equal(t, "new excerpt", updated.Excerpt)
}

func TestUpdate_TitleEditWithSameBaseKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Hello World"))
	require.NoError(t, err)
	require.Equal(t, "hello-world", b.Slug)

	// Punctuation-only edits normalize to the same base; the probe must
	// not treat the blog's own row as a collision.
	newTitle := "Hello World!"
	updated, err := svc.Update(context.Background(), b.ID.String(), blog.UpdateBlogRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "hello-world", updated.Slug)
}

func TestUpdate_UnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Update(context.Background(), uuid.New().String(), blog.UpdateBlogRequest{})
	assert.ErrorIs(t, err, blog.ErrBlogNotFound)

	_, err = svc.Update(context.Background(), "not-a-uuid", blog.UpdateBlogRequest{})
	assert.ErrorIs(t, err, blog.ErrBlogNotFound)
}

func TestGet_HidesDraftsFromPublic(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	input := createReq("Hidden Draft Post")
	input.Status = blog.StatusDraft
	b, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), b.Slug, false)
	assert.ErrorIs(t, err, blog.ErrBlogNotFound)

	got, err := svc.Get(context.Background(), b.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestGet_CountsViews(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), createReq("Popular Post"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = svc.Get(context.Background(), b.ID.String(), false)
		require.NoError(t, err)
	}

	got, err := svc.Get(context.Background(), b.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Views)
}

func TestList_PublicForcedToPublished(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, _, err := svc.List(context.Background(), blog.ListBlogsRequest{Status: blog.StatusDraft}, false)
	require.NoError(t, err)

	assert.True(t, repo.lastParams.HasEquality("status"))
	for _, f := range repo.lastParams.Filters {
		if f.Column == "status" {
			assert.Equal(t, blog.StatusPublished, f.Value)
		}
	}
}

func TestList_PrivilegedDefaultsToPublished(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, _, err := svc.List(context.Background(), blog.ListBlogsRequest{}, true)
	require.NoError(t, err)

	require.True(t, repo.lastParams.HasEquality("status"))
	for _, f := range repo.lastParams.Filters {
		if f.Column == "status" {
			assert.Equal(t, blog.StatusPublished, f.Value)
		}
	}

	// An explicit status is honored for privileged callers.
	_, _, err = svc.List(context.Background(), blog.ListBlogsRequest{Status: blog.StatusDraft}, true)
	require.NoError(t, err)
	for _, f := range repo.lastParams.Filters {
		if f.Column == "status" {
			assert.Equal(t, blog.StatusDraft, f.Value)
		}
	}
}

func TestList_Pagination(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(context.Background(), createReq(fmt.Sprintf("Post Number %d", i)))
		require.NoError(t, err)
	}

	result, pagination, err := svc.List(context.Background(), blog.ListBlogsRequest{Page: 2, Limit: 10}, true)
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
	assert.Equal(t, 25, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}

func TestList_ClampsPageAndLimit(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, _, err := svc.List(context.Background(), blog.ListBlogsRequest{Page: -3, Limit: 900}, true)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastParams.Page)
	assert.Equal(t, query.MaxLimit, repo.lastParams.Limit)
}

func TestList_SortAliasTranslated(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, _, err := svc.List(context.Background(), blog.ListBlogsRequest{SortBy: "publishedAt", Order: "asc"}, true)
	require.NoError(t, err)

	assert.Equal(t, "published_at", repo.lastParams.SortBy)
	assert.Equal(t, query.Asc, repo.lastParams.SortOrder)
}

func TestFeatured_ServedFromCacheAfterFirstRead(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	input := createReq("Featured Story")
	input.IsFeatured = true
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	first, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Remove from the backing store; the cached copy still serves.
	repo.blogs = map[uuid.UUID]*blog.Blog{}
	second, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestDelete_InvalidatesFeaturedCache(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	input := createReq("Featured Story")
	input.IsFeatured = true
	b, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Featured(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), b.ID.String()))

	items, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
