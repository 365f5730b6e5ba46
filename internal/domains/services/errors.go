package services

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrSlugConflict    = errors.New("service slug already exists")
	ErrInvalidPrice    = errors.New("price must be a non-negative decimal")
)
