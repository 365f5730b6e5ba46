package blog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBlogRequest is the admin create payload. Multipart uploads put
// these fields in the form body next to the featuredImage file part.
type CreateBlogRequest struct {
	Title           string   `json:"title" form:"title"`
	Content         string   `json:"content" form:"content"`
	Excerpt         string   `json:"excerpt" form:"excerpt"`
	Category        string   `json:"category" form:"category"`
	Tags            []string `json:"tags" form:"tags"`
	Status          string   `json:"status" form:"status"`
	MetaTitle       string   `json:"metaTitle" form:"metaTitle"`
	MetaDescription string   `json:"metaDescription" form:"metaDescription"`
	MetaKeywords    string   `json:"metaKeywords" form:"metaKeywords"`
	IsFeatured      bool     `json:"isFeatured" form:"isFeatured"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(5, 200),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Status,
			validation.In(StatusDraft, StatusPublished, StatusArchived).Error("invalid status"),
		),
		validation.Field(&r.MetaTitle, validation.Length(0, 60)),
		validation.Field(&r.MetaDescription, validation.Length(0, 160)),
	)
}

// UpdateBlogRequest is a partial update; nil means "leave unchanged".
// The changed-field set drives which lifecycle hooks re-run.
type UpdateBlogRequest struct {
	Title           *string   `json:"title" form:"title"`
	Content         *string   `json:"content" form:"content"`
	Excerpt         *string   `json:"excerpt" form:"excerpt"`
	Category        *string   `json:"category" form:"category"`
	Tags            *[]string `json:"tags" form:"tags"`
	Status          *string   `json:"status" form:"status"`
	MetaTitle       *string   `json:"metaTitle" form:"metaTitle"`
	MetaDescription *string   `json:"metaDescription" form:"metaDescription"`
	MetaKeywords    *string   `json:"metaKeywords" form:"metaKeywords"`
	IsFeatured      *bool     `json:"isFeatured" form:"isFeatured"`
	FeaturedImage   *string   `json:"-" form:"-"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(5, 200)),
		),
		validation.Field(&r.Excerpt,
			validation.When(r.Excerpt != nil, validation.Length(0, 500)),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(StatusDraft, StatusPublished, StatusArchived).Error("invalid status"),
			),
		),
	)
}

// ListBlogsRequest carries the list endpoint's query parameters.
type ListBlogsRequest struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Status   string `form:"status"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy"`
	Order    string `form:"order"`
}

func (r ListBlogsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived).Error("invalid status"),
			),
		),
	)
}

// ListBlogsResult pairs a page of items with the total count computed
// independently of pagination.
type ListBlogsResult struct {
	Items []ListItem
	Total int
}

// CreateInput is what the service persists after validation; the
// handler resolves the author from the caller identity and the image
// from the upload pipeline.
type CreateInput struct {
	CreateBlogRequest
	Author        string
	FeaturedImage string
}
