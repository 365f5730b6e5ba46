package blog

import "errors"

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrSlugConflict = errors.New("blog slug already exists")
)
