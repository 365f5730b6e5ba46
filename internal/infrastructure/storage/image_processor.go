package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Target describes the processed rendition for one image slot.
type Target struct {
	Width   int
	Height  int
	Quality int
}

// Renditions per image slot, matching the public site's layouts.
var (
	BannerImage       = Target{Width: 1920, Height: 800, Quality: 85}
	BannerMobileImage = Target{Width: 768, Height: 600, Quality: 85}
	BlogFeaturedImage = Target{Width: 1200, Height: 630, Quality: 80}
	ServiceImage      = Target{Width: 800, Height: 600, Quality: 85}
	ServiceIcon       = Target{Width: 64, Height: 64, Quality: 90}
	GalleryImage      = Target{Width: 1200, Height: 800, Quality: 85}
)

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &ImageProcessor{MaxSize: maxSize}
}

// Validate rejects oversized payloads and anything that is not a
// decodable jpeg/png/gif/webp.
func (p *ImageProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif", "webp":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed", format)
	}
}

// Process center-crops to the target's aspect ratio, resizes, and
// re-encodes as JPEG at the target quality.
func (p *ImageProcessor) Process(data []byte, target Target) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fill(img, target.Width, target.Height, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: target.Quality}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return buf.Bytes(), nil
}
