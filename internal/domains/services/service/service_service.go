package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"brandsite-backend/internal/domains/services"
	"brandsite-backend/internal/shared/query"
	"brandsite-backend/internal/shared/utils"
	"brandsite-backend/pkg/cache"
	"brandsite-backend/pkg/logger"
)

const (
	defaultListLimit = 100
	cacheTTL         = time.Hour
	slugRetries      = 3
)

type serviceBusiness struct {
	repo  services.Repository
	cache cache.Cache
}

func NewServiceBusiness(repo services.Repository, cacheStore cache.Cache) services.Business {
	return &serviceBusiness{repo: repo, cache: cacheStore}
}

func (b *serviceBusiness) Create(ctx context.Context, input services.CreateInput) (*services.Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	s := &services.Service{
		ID:               uuid.New(),
		Name:             input.Name,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Icon:             input.Icon,
		Image:            input.Image,
		Gallery:          input.Gallery,
		Price:            price,
		PriceUnit:        input.PriceUnit,
		IsPopular:        input.IsPopular,
		Features:         input.Features,
		FAQs:             input.FAQs,
		Status:           input.Status,
		Order:            input.Order,
		MetaTitle:        input.MetaTitle,
		MetaDescription:  input.MetaDescription,
		MetaKeywords:     input.MetaKeywords,
	}
	s.ApplyCreateHooks(time.Now())

	base := utils.Slugify(s.Name)
	for attempt := 0; attempt < slugRetries; attempt++ {
		slug, err := utils.UniqueSlug(ctx, base, b.repo.SlugExists)
		if err != nil {
			return nil, err
		}
		s.Slug = slug

		err = b.repo.Create(ctx, s)
		if errors.Is(err, services.ErrSlugConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		b.invalidateCache(ctx)
		return s, nil
	}
	return nil, services.ErrSlugConflict
}

func (b *serviceBusiness) Update(ctx context.Context, id string, req services.UpdateServiceRequest) (*services.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, services.ErrServiceNotFound
	}

	s, err := b.repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	nameChanged, err := applyRequest(s, req)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()

	if !nameChanged {
		if err := b.repo.Update(ctx, s); err != nil {
			return nil, err
		}
		b.invalidateCache(ctx)
		return s, nil
	}

	// The re-probe excludes the service's own row so a rename whose base
	// matches the current slug keeps it.
	base := utils.Slugify(s.Name)
	existsExcept := func(ctx context.Context, slug string) (bool, error) {
		return b.repo.SlugExistsExcept(ctx, slug, s.ID)
	}
	for attempt := 0; attempt < slugRetries; attempt++ {
		slug, err := utils.UniqueSlug(ctx, base, existsExcept)
		if err != nil {
			return nil, err
		}
		s.Slug = slug

		err = b.repo.Update(ctx, s)
		if errors.Is(err, services.ErrSlugConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		b.invalidateCache(ctx)
		return s, nil
	}
	return nil, services.ErrSlugConflict
}

func applyRequest(s *services.Service, req services.UpdateServiceRequest) (nameChanged bool, err error) {
	if req.Name != nil && *req.Name != s.Name {
		s.Name = *req.Name
		nameChanged = true
	}
	if req.Price != nil {
		price, perr := parsePrice(*req.Price)
		if perr != nil {
			return false, perr
		}
		s.Price = price
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.ShortDescription != nil {
		s.ShortDescription = *req.ShortDescription
	}
	if req.PriceUnit != nil {
		s.PriceUnit = *req.PriceUnit
	}
	if req.IsPopular != nil {
		s.IsPopular = *req.IsPopular
	}
	if req.Features != nil {
		s.Features = *req.Features
	}
	if req.FAQs != nil {
		s.FAQs = *req.FAQs
	}
	if req.Status != nil {
		s.Status = *req.Status
	}
	if req.Order != nil {
		s.Order = *req.Order
	}
	if req.MetaTitle != nil {
		s.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		s.MetaDescription = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		s.MetaKeywords = *req.MetaKeywords
	}
	if req.Image != nil {
		s.Image = *req.Image
	}
	if req.Icon != nil {
		s.Icon = *req.Icon
	}
	if req.Gallery != nil {
		s.Gallery = *req.Gallery
	}
	return nameChanged, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, services.ErrInvalidPrice
	}
	return price, nil
}

func (b *serviceBusiness) Delete(ctx context.Context, id string) error {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return services.ErrServiceNotFound
	}
	if err := b.repo.Delete(ctx, serviceID); err != nil {
		return err
	}
	b.invalidateCache(ctx)
	return nil
}

func (b *serviceBusiness) Get(ctx context.Context, identifier string, privileged bool) (*services.Service, error) {
	var s *services.Service
	var err error

	if serviceID, parseErr := uuid.Parse(identifier); parseErr == nil {
		s, err = b.repo.GetByID(ctx, serviceID)
	} else {
		s, err = b.repo.GetBySlug(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if !privileged && s.Status != services.StatusActive {
		return nil, services.ErrServiceNotFound
	}
	return s, nil
}

func (b *serviceBusiness) List(ctx context.Context, req services.ListServicesRequest, privileged bool) ([]services.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filters := []query.Filter{}

	// Every listing defaults to active services; privilege only unlocks
	// an explicit status filter, it never widens the default.
	if privileged && req.Status != "" {
		filters = append(filters, query.Eq("status", req.Status))
	} else {
		filters = append(filters, query.Eq("status", services.StatusActive))
	}
	if req.IsPopular != nil && *req.IsPopular {
		filters = append(filters, query.Eq("is_popular", true))
	}
	if req.Search != "" {
		filters = append(filters, query.Search(req.Search, "name", "description", "short_description"))
	}

	limit := req.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}

	// The filterless public listing is the site's hot path; cache it.
	cacheable := !privileged && req.Search == "" && req.IsPopular == nil && req.Limit <= 0
	const key = "services:list"

	if cacheable {
		var cached []services.Service
		if hit, err := b.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := b.repo.List(ctx, filters, limit)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := b.cache.Set(ctx, key, items, cacheTTL); err != nil {
			logger.Warn("failed to cache service listing", err)
		}
	}
	return items, nil
}

func (b *serviceBusiness) invalidateCache(ctx context.Context) {
	if err := b.cache.DeletePattern(ctx, "services:*"); err != nil {
		logger.Warn("failed to invalidate service cache", err)
	}
}
