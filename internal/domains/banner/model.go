package banner

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Subtitle        string     `json:"subtitle,omitempty" db:"subtitle"`
	Description     string     `json:"description,omitempty" db:"description"`
	Image           string     `json:"image" db:"image"`
	MobileImage     string     `json:"mobileImage,omitempty" db:"mobile_image"`
	ButtonText      string     `json:"buttonText,omitempty" db:"button_text"`
	ButtonLink      string     `json:"buttonLink,omitempty" db:"button_link"`
	Button2Text     string     `json:"button2Text,omitempty" db:"button2_text"`
	Button2Link     string     `json:"button2Link,omitempty" db:"button2_link"`
	Order           int        `json:"order" db:"display_order"`
	Page            string     `json:"page" db:"page"`
	Position        string     `json:"position" db:"position"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	StartDate       *time.Time `json:"startDate" db:"start_date"`
	EndDate         *time.Time `json:"endDate" db:"end_date"`
	BackgroundColor string     `json:"backgroundColor,omitempty" db:"background_color"`
	TextColor       string     `json:"textColor,omitempty" db:"text_color"`
	Animation       string     `json:"animation,omitempty" db:"animation"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// VisibleAt reports whether the banner's schedule window covers the
// given instant. Both bounds are optional and both must hold.
func (b *Banner) VisibleAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && b.StartDate.After(now) {
		return false
	}
	if b.EndDate != nil && b.EndDate.Before(now) {
		return false
	}
	return true
}
