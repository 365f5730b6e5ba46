package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"brandsite-backend/internal/domains/banner"
	"brandsite-backend/pkg/cache"
	"brandsite-backend/pkg/logger"
)

const cacheTTL = 10 * time.Minute

type bannerService struct {
	repo  banner.Repository
	cache cache.Cache
}

func NewBannerService(repo banner.Repository, cacheStore cache.Cache) banner.Service {
	return &bannerService{repo: repo, cache: cacheStore}
}

func (s *bannerService) Create(ctx context.Context, input banner.CreateInput) (*banner.Banner, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Image == "" {
		return nil, banner.ErrImageRequired
	}

	now := time.Now()
	b := &banner.Banner{
		ID:              uuid.New(),
		Title:           input.Title,
		Subtitle:        input.Subtitle,
		Description:     input.Description,
		Image:           input.Image,
		MobileImage:     input.MobileImage,
		ButtonText:      input.ButtonText,
		ButtonLink:      input.ButtonLink,
		Button2Text:     input.Button2Text,
		Button2Link:     input.Button2Link,
		Order:           input.Order,
		Page:            input.Page,
		Position:        input.Position,
		IsActive:        true,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		BackgroundColor: input.BackgroundColor,
		TextColor:       input.TextColor,
		Animation:       input.Animation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.IsActive != nil {
		b.IsActive = *input.IsActive
	}
	if b.Page == "" {
		b.Page = "home"
	}
	if b.Position == "" {
		b.Position = "top"
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return b, nil
}

func (s *bannerService) Update(ctx context.Context, id string, req banner.UpdateBannerRequest) (*banner.Banner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bannerID, err := uuid.Parse(id)
	if err != nil {
		return nil, banner.ErrBannerNotFound
	}

	b, err := s.repo.GetByID(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	applyRequest(b, req)
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return b, nil
}

func applyRequest(b *banner.Banner, req banner.UpdateBannerRequest) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Subtitle != nil {
		b.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.ButtonText != nil {
		b.ButtonText = *req.ButtonText
	}
	if req.ButtonLink != nil {
		b.ButtonLink = *req.ButtonLink
	}
	if req.Button2Text != nil {
		b.Button2Text = *req.Button2Text
	}
	if req.Button2Link != nil {
		b.Button2Link = *req.Button2Link
	}
	if req.Order != nil {
		b.Order = *req.Order
	}
	if req.Page != nil {
		b.Page = *req.Page
	}
	if req.Position != nil {
		b.Position = *req.Position
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		b.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		b.EndDate = req.EndDate
	}
	if req.BackgroundColor != nil {
		b.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		b.TextColor = *req.TextColor
	}
	if req.Animation != nil {
		b.Animation = *req.Animation
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.MobileImage != nil {
		b.MobileImage = *req.MobileImage
	}
}

func (s *bannerService) Delete(ctx context.Context, id string) error {
	bannerID, err := uuid.Parse(id)
	if err != nil {
		return banner.ErrBannerNotFound
	}
	if err := s.repo.Delete(ctx, bannerID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *bannerService) Active(ctx context.Context, req banner.ActiveBannersRequest) ([]banner.Banner, error) {
	page := req.Page
	if page == "" {
		page = "home"
	}

	key := "banners:active:" + page + ":" + req.Position

	var cached []banner.Banner
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := s.repo.ListActive(ctx, page, req.Position, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, items, cacheTTL); err != nil {
		logger.Warn("failed to cache active banners", err)
	}
	return items, nil
}

func (s *bannerService) ListAll(ctx context.Context) ([]banner.Banner, error) {
	return s.repo.ListAll(ctx)
}

func (s *bannerService) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "banners:*"); err != nil {
		logger.Warn("failed to invalidate banner cache", err)
	}
}
