package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
)

// Uploader runs the image pipeline: validate the upload, resize to the
// rendition, store the JPEG, return the public URL.
type Uploader struct {
	processor *ImageProcessor
	storage   Storage
}

func NewUploader(processor *ImageProcessor, storage Storage) *Uploader {
	return &Uploader{processor: processor, storage: storage}
}

// UploadImage processes one multipart file into the target rendition
// under the given key prefix.
func (u *Uploader) UploadImage(ctx context.Context, fh *multipart.FileHeader, target Target, prefix string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("cannot read upload: %w", err)
	}

	if err := u.processor.Validate(data); err != nil {
		return "", err
	}

	processed, err := u.processor.Process(data, target)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.jpg", prefix, uuid.New().String())
	return u.storage.Upload(ctx, key, processed, "image/jpeg")
}
