package blog

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Blog lifecycle states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// wordsPerMinute is the reading speed assumed for the readingTime
// estimate.
const wordsPerMinute = 200

type Blog struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Slug            string     `json:"slug" db:"slug"`
	Content         string     `json:"content,omitempty" db:"content"`
	Excerpt         string     `json:"excerpt,omitempty" db:"excerpt"`
	FeaturedImage   string     `json:"featuredImage,omitempty" db:"featured_image"`
	Author          string     `json:"author" db:"author"`
	Category        string     `json:"category" db:"category"`
	Tags            []string   `json:"tags" db:"tags"`
	Status          string     `json:"status" db:"status"`
	PublishedAt     *time.Time `json:"publishedAt" db:"published_at"`
	Views           int        `json:"views" db:"views"`
	MetaTitle       string     `json:"metaTitle,omitempty" db:"meta_title"`
	MetaDescription string     `json:"metaDescription,omitempty" db:"meta_description"`
	MetaKeywords    string     `json:"metaKeywords,omitempty" db:"meta_keywords"`
	ReadingTime     int        `json:"readingTime" db:"reading_time"`
	IsFeatured      bool       `json:"isFeatured" db:"is_featured"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// EstimateReadingTime counts whitespace-delimited words and rounds the
// minutes up.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

// ApplyCreateHooks fills the derived fields for a brand-new blog. The
// slug is set separately by the service after the uniqueness probe.
func (b *Blog) ApplyCreateHooks(now time.Time) {
	if b.Status == "" {
		b.Status = StatusDraft
	}
	if b.Status == StatusPublished {
		b.PublishedAt = &now
	}
	b.ReadingTime = EstimateReadingTime(b.Content)
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Changed flags for one partial update, as resolved from the request's
// present fields. Derived fields are recomputed only for inputs that
// actually changed.
type ChangeSet struct {
	Title   bool
	Content bool
	Status  bool
}

// ApplyUpdateHooks maintains derived fields after the service has
// copied the request's fields onto the entity:
//   - publishedAt is stamped only on the transition into published
//     while unset, and is never cleared or moved afterwards;
//   - readingTime follows content edits.
//
// Slug regeneration is the service's job (it needs the collection
// probe) and is gated on changes.Title there.
func (b *Blog) ApplyUpdateHooks(changes ChangeSet, now time.Time) {
	if changes.Status && b.Status == StatusPublished && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
	if changes.Content {
		b.ReadingTime = EstimateReadingTime(b.Content)
	}
	b.UpdatedAt = now
}

// ListItem is the listing projection: everything but the full content.
type ListItem struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Excerpt       string     `json:"excerpt,omitempty" db:"excerpt"`
	FeaturedImage string     `json:"featuredImage,omitempty" db:"featured_image"`
	Author        string     `json:"author" db:"author"`
	Category      string     `json:"category" db:"category"`
	Tags          []string   `json:"tags" db:"tags"`
	Status        string     `json:"status" db:"status"`
	PublishedAt   *time.Time `json:"publishedAt" db:"published_at"`
	Views         int        `json:"views" db:"views"`
	ReadingTime   int        `json:"readingTime" db:"reading_time"`
	IsFeatured    bool       `json:"isFeatured" db:"is_featured"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
