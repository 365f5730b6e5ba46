package banner

import "errors"

var (
	ErrBannerNotFound = errors.New("banner not found")
	ErrImageRequired  = errors.New("banner image is required")
)
