package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service lifecycle states.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// FAQ is one question/answer pair stored in the faqs jsonb column.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Service struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Slug             string          `json:"slug" db:"slug"`
	Description      string          `json:"description" db:"description"`
	ShortDescription string          `json:"shortDescription,omitempty" db:"short_description"`
	Icon             string          `json:"icon,omitempty" db:"icon"`
	Image            string          `json:"image,omitempty" db:"image"`
	Gallery          []string        `json:"gallery" db:"gallery"`
	Price            decimal.Decimal `json:"price" db:"price"`
	PriceUnit        string          `json:"priceUnit" db:"price_unit"`
	IsPopular        bool            `json:"isPopular" db:"is_popular"`
	Features         []string        `json:"features" db:"features"`
	FAQs             []FAQ           `json:"faqs" db:"faqs"`
	Status           string          `json:"status" db:"status"`
	Order            int             `json:"order" db:"display_order"`
	MetaTitle        string          `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription  string          `json:"metaDescription,omitempty" db:"meta_description"`
	MetaKeywords     string          `json:"metaKeywords,omitempty" db:"meta_keywords"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}

// ApplyCreateHooks fills defaults for a new service. The slug is set by
// the business layer after the uniqueness probe.
func (s *Service) ApplyCreateHooks(now time.Time) {
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.PriceUnit == "" {
		s.PriceUnit = "hour"
	}
	if s.Gallery == nil {
		s.Gallery = []string{}
	}
	if s.Features == nil {
		s.Features = []string{}
	}
	if s.FAQs == nil {
		s.FAQs = []FAQ{}
	}
	s.CreatedAt = now
	s.UpdatedAt = now
}
