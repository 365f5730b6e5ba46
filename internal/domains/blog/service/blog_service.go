package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"brandsite-backend/internal/domains/blog"
	"brandsite-backend/internal/shared/query"
	"brandsite-backend/internal/shared/utils"
	"brandsite-backend/pkg/cache"
	"brandsite-backend/pkg/logger"
)

const (
	defaultListLimit = 10
	featuredLimit    = 5
	cacheTTL         = time.Hour

	// slugRetries bounds the create/update retry loop when a concurrent
	// writer claims the probed slug between the probe and the insert.
	slugRetries = 3
)

// blogSortable whitelists sort columns; requests use the JSON field
// names, which are translated before hitting SQL.
var blogSortable = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"published_at": true,
	"title":        true,
	"views":        true,
}

var sortAliases = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"publishedAt": "published_at",
}

type blogService struct {
	repo  blog.Repository
	cache cache.Cache
}

func NewBlogService(repo blog.Repository, cacheStore cache.Cache) blog.Service {
	return &blogService{repo: repo, cache: cacheStore}
}

func (s *blogService) Create(ctx context.Context, input blog.CreateInput) (*blog.Blog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b := &blog.Blog{
		ID:              uuid.New(),
		Title:           input.Title,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		FeaturedImage:   input.FeaturedImage,
		Author:          input.Author,
		Category:        input.Category,
		Tags:            input.Tags,
		Status:          input.Status,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		IsFeatured:      input.IsFeatured,
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.ApplyCreateHooks(time.Now())

	base := utils.Slugify(b.Title)
	for attempt := 0; attempt < slugRetries; attempt++ {
		slug, err := utils.UniqueSlug(ctx, base, s.repo.SlugExists)
		if err != nil {
			return nil, err
		}
		b.Slug = slug

		err = s.repo.Create(ctx, b)
		if errors.Is(err, blog.ErrSlugConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
		return b, nil
	}
	return nil, blog.ErrSlugConflict
}

func (s *blogService) Update(ctx context.Context, id string, req blog.UpdateBlogRequest) (*blog.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	blogID, err := uuid.Parse(id)
	if err != nil {
		return nil, blog.ErrBlogNotFound
	}

	b, err := s.repo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	changes := applyRequest(b, req)

	b.ApplyUpdateHooks(changes, time.Now())

	if !changes.Title {
		if err := s.repo.Update(ctx, b); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
		return b, nil
	}

	// A new title means a new slug, re-probed for uniqueness. The probe
	// excludes the blog's own row so a title edit whose base matches the
	// current slug keeps it instead of picking up a spurious suffix.
	base := utils.Slugify(b.Title)
	existsExcept := func(ctx context.Context, slug string) (bool, error) {
		return s.repo.SlugExistsExcept(ctx, slug, b.ID)
	}
	for attempt := 0; attempt < slugRetries; attempt++ {
		slug, err := utils.UniqueSlug(ctx, base, existsExcept)
		if err != nil {
			return nil, err
		}
		b.Slug = slug

		err = s.repo.Update(ctx, b)
		if errors.Is(err, blog.ErrSlugConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
		return b, nil
	}
	return nil, blog.ErrSlugConflict
}

func applyRequest(b *blog.Blog, req blog.UpdateBlogRequest) blog.ChangeSet {
	changes := blog.ChangeSet{}
	if req.Title != nil && *req.Title != b.Title {
		b.Title = *req.Title
		changes.Title = true
	}
	if req.Content != nil && *req.Content != b.Content {
		b.Content = *req.Content
		changes.Content = true
	}
	if req.Status != nil && *req.Status != b.Status {
		b.Status = *req.Status
		changes.Status = true
	}
	if req.Excerpt != nil {
		b.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.Tags != nil {
		b.Tags = *req.Tags
	}
	if req.MetaTitle != nil {
		b.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		b.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		b.MetaKeywords = *req.MetaKeywords
	}
	if req.IsFeatured != nil {
		b.IsFeatured = *req.IsFeatured
	}
	if req.FeaturedImage != nil {
		b.FeaturedImage = *req.FeaturedImage
	}
	return changes
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return blog.ErrBlogNotFound
	}
	if err := s.repo.Delete(ctx, blogID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *blogService) Get(ctx context.Context, identifier string, privileged bool) (*blog.Blog, error) {
	var b *blog.Blog
	var err error

	if blogID, parseErr := uuid.Parse(identifier); parseErr == nil {
		b, err = s.repo.GetByID(ctx, blogID)
	} else {
		b, err = s.repo.GetBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if !privileged && b.Status != blog.StatusPublished {
		return nil, blog.ErrBlogNotFound
	}

	if err := s.repo.IncrementViews(ctx, b.ID); err != nil {
		logger.Warn("failed to increment blog views", err)
	} else {
		b.Views++
	}
	return b, nil
}

func (s *blogService) List(ctx context.Context, req blog.ListBlogsRequest, privileged bool) (*blog.ListBlogsResult, query.Pagination, error) {
	if err := req.Validate(); err != nil {
		return nil, query.Pagination{}, err
	}

	params := query.Params{
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    sortColumn(req.SortBy),
		SortOrder: query.SortOrder(req.Order),
	}

	// Every listing defaults to published content; privilege only
	// unlocks an explicit status filter, it never widens the default.
	if privileged && req.Status != "" {
		params.Filters = append(params.Filters, query.Eq("status", req.Status))
	} else {
		params.Filters = append(params.Filters, query.Eq("status", blog.StatusPublished))
	}
	if req.Category != "" {
		params.Filters = append(params.Filters, query.Eq("category", req.Category))
	}
	if req.Tag != "" {
		params.Filters = append(params.Filters, query.Contains("tags", req.Tag))
	}
	if req.Search != "" {
		params.Filters = append(params.Filters, query.Search(req.Search, "title", "excerpt", "content"))
	}

	params.Normalize(defaultListLimit, blogSortable)

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	return &blog.ListBlogsResult{Items: items, Total: total},
		query.NewPagination(params.Page, params.Limit, total), nil
}

func (s *blogService) Featured(ctx context.Context) ([]blog.ListItem, error) {
	const key = "blogs:featured"

	var cached []blog.ListItem
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, items, cacheTTL); err != nil {
		logger.Warn("failed to cache featured blogs", err)
	}
	return items, nil
}

func (s *blogService) Categories(ctx context.Context) ([]string, error) {
	const key = "blogs:categories"

	var cached []string
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, categories, cacheTTL); err != nil {
		logger.Warn("failed to cache blog categories", err)
	}
	return categories, nil
}

// invalidateCache drops every blogs:* entry after a write. Cache
// failures never fail the write.
func (s *blogService) invalidateCache(ctx context.Context) {
	s.invalidate(ctx, "blogs:*")
}

func (s *blogService) invalidate(ctx context.Context, pattern string) {
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		logger.Warn("failed to invalidate blog cache", err)
	}
}

func sortColumn(requested string) string {
	if column, ok := sortAliases[requested]; ok {
		return column
	}
	return requested
}
