package banner

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBannerRequest is the admin create payload; the image arrives as
// a multipart file part, not a body field.
type CreateBannerRequest struct {
	Title           string     `json:"title" form:"title"`
	Subtitle        string     `json:"subtitle" form:"subtitle"`
	Description     string     `json:"description" form:"description"`
	ButtonText      string     `json:"buttonText" form:"buttonText"`
	ButtonLink      string     `json:"buttonLink" form:"buttonLink"`
	Button2Text     string     `json:"button2Text" form:"button2Text"`
	Button2Link     string     `json:"button2Link" form:"button2Link"`
	Order           int        `json:"order" form:"order"`
	Page            string     `json:"page" form:"page"`
	Position        string     `json:"position" form:"position"`
	IsActive        *bool      `json:"isActive" form:"isActive"`
	StartDate       *time.Time `json:"startDate" form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate         *time.Time `json:"endDate" form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	BackgroundColor string     `json:"backgroundColor" form:"backgroundColor"`
	TextColor       string     `json:"textColor" form:"textColor"`
	Animation       string     `json:"animation" form:"animation"`
}

func (r CreateBannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
	)
}

// UpdateBannerRequest is a partial update; nil means "leave unchanged".
type UpdateBannerRequest struct {
	Title           *string    `json:"title" form:"title"`
	Subtitle        *string    `json:"subtitle" form:"subtitle"`
	Description     *string    `json:"description" form:"description"`
	ButtonText      *string    `json:"buttonText" form:"buttonText"`
	ButtonLink      *string    `json:"buttonLink" form:"buttonLink"`
	Button2Text     *string    `json:"button2Text" form:"button2Text"`
	Button2Link     *string    `json:"button2Link" form:"button2Link"`
	Order           *int       `json:"order" form:"order"`
	Page            *string    `json:"page" form:"page"`
	Position        *string    `json:"position" form:"position"`
	IsActive        *bool      `json:"isActive" form:"isActive"`
	StartDate       *time.Time `json:"startDate" form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate         *time.Time `json:"endDate" form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
	BackgroundColor *string    `json:"backgroundColor" form:"backgroundColor"`
	TextColor       *string    `json:"textColor" form:"textColor"`
	Animation       *string    `json:"animation" form:"animation"`
	Image           *string    `json:"-" form:"-"`
	MobileImage     *string    `json:"-" form:"-"`
}

func (r UpdateBannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 200)),
		),
	)
}

// ActiveBannersRequest selects the public banner set for one placement.
type ActiveBannersRequest struct {
	Page     string `form:"page"`
	Position string `form:"position"`
}

// CreateInput is what the service persists; the handler resolves the
// image URLs from the upload pipeline.
type CreateInput struct {
	CreateBannerRequest
	Image       string
	MobileImage string
}
