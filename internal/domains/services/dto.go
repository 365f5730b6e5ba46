package services

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateServiceRequest is the admin create payload. Price travels as a
// decimal string so form and JSON submissions share one shape.
type CreateServiceRequest struct {
	Name             string   `json:"name" form:"name"`
	Description      string   `json:"description" form:"description"`
	ShortDescription string   `json:"shortDescription" form:"shortDescription"`
	Price            string   `json:"price" form:"price"`
	PriceUnit        string   `json:"priceUnit" form:"priceUnit"`
	IsPopular        bool     `json:"isPopular" form:"isPopular"`
	Features         []string `json:"features" form:"features"`
	FAQs             []FAQ    `json:"faqs" form:"-"`
	Status           string   `json:"status" form:"status"`
	Order            int      `json:"order" form:"order"`
	MetaTitle        string   `json:"metaTitle" form:"metaTitle"`
	MetaDescription  string   `json:"metaDescription" form:"metaDescription"`
	MetaKeywords     string   `json:"metaKeywords" form:"metaKeywords"`
}

func (r CreateServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(3, 100),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.ShortDescription, validation.Length(0, 300)),
		validation.Field(&r.Status,
			validation.In(StatusActive, StatusInactive).Error("invalid status"),
		),
		validation.Field(&r.MetaTitle, validation.Length(0, 60)),
		validation.Field(&r.MetaDescription, validation.Length(0, 160)),
	)
}

// UpdateServiceRequest is a partial update; nil means "leave unchanged".
type UpdateServiceRequest struct {
	Name             *string   `json:"name" form:"name"`
	Description      *string   `json:"description" form:"description"`
	ShortDescription *string   `json:"shortDescription" form:"shortDescription"`
	Price            *string   `json:"price" form:"price"`
	PriceUnit        *string   `json:"priceUnit" form:"priceUnit"`
	IsPopular        *bool     `json:"isPopular" form:"isPopular"`
	Features         *[]string `json:"features" form:"features"`
	FAQs             *[]FAQ    `json:"faqs" form:"-"`
	Status           *string   `json:"status" form:"status"`
	Order            *int      `json:"order" form:"order"`
	MetaTitle        *string   `json:"metaTitle" form:"metaTitle"`
	MetaDescription  *string   `json:"metaDescription" form:"metaDescription"`
	MetaKeywords     *string   `json:"metaKeywords" form:"metaKeywords"`
	Image            *string   `json:"-" form:"-"`
	Icon             *string   `json:"-" form:"-"`
	Gallery          *[]string `json:"-" form:"-"`
}

func (r UpdateServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil, validation.Length(3, 100)),
		),
		validation.Field(&r.ShortDescription,
			validation.When(r.ShortDescription != nil, validation.Length(0, 300)),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(StatusActive, StatusInactive).Error("invalid status"),
			),
		),
	)
}

// ListServicesRequest carries the public list's query parameters. The
// endpoint is unpaginated; limit defaults to 100.
type ListServicesRequest struct {
	IsPopular *bool  `form:"isPopular"`
	Status    string `form:"status"`
	Search    string `form:"search"`
	Limit     int    `form:"limit"`
}

func (r ListServicesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusActive, StatusInactive).Error("invalid status"),
			),
		),
	)
}

// CreateInput is what the business layer persists after validation; the
// handler resolves image, icon and gallery from the upload pipeline.
type CreateInput struct {
	CreateServiceRequest
	Image   string
	Icon    string
	Gallery []string
}
