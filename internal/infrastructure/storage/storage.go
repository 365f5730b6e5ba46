package storage

import "context"

// Storage persists processed images and returns the public path/URL
// recorded on the entity. Implementations: local uploads directory and
// MinIO object storage, selected by STORAGE_DRIVER.
type Storage interface {
	// Upload writes data under key and returns the stored path.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes a stored object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
