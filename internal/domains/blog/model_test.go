package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateReadingTime(t *testing.T) {
	assert.Equal(t, 0, EstimateReadingTime(""))
	assert.Equal(t, 1, EstimateReadingTime("just a few words"))
	assert.Equal(t, 1, EstimateReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, EstimateReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, EstimateReadingTime(strings.Repeat("word ", 1000)))
}

func TestApplyCreateHooks_Draft(t *testing.T) {
	now := time.Now()
	b := &Blog{Title: "Hello", Content: "short content"}

	b.ApplyCreateHooks(now)

	assert.Equal(t, StatusDraft, b.Status)
	assert.Nil(t, b.PublishedAt)
	assert.Equal(t, 1, b.ReadingTime)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, now, b.UpdatedAt)
}

func TestApplyCreateHooks_Published(t *testing.T) {
	now := time.Now()
	b := &Blog{Title: "Hello", Content: "short content", Status: StatusPublished}

	b.ApplyCreateHooks(now)

	require.NotNil(t, b.PublishedAt)
	assert.Equal(t, now, *b.PublishedAt)
}

func TestApplyUpdateHooks_PublishStampsOnce(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &Blog{Status: StatusDraft, CreatedAt: created, UpdatedAt: created}

	publishTime := created.Add(24 * time.Hour)
	b.Status = StatusPublished
	b.ApplyUpdateHooks(ChangeSet{Status: true}, publishTime)

	require.NotNil(t, b.PublishedAt)
	assert.Equal(t, publishTime, *b.PublishedAt)

	// Archive and publish again: the original timestamp survives.
	b.Status = StatusArchived
	b.ApplyUpdateHooks(ChangeSet{Status: true}, publishTime.Add(time.Hour))
	b.Status = StatusPublished
	b.ApplyUpdateHooks(ChangeSet{Status: true}, publishTime.Add(2*time.Hour))

	assert.Equal(t, publishTime, *b.PublishedAt)
}

func TestApplyUpdateHooks_ReadingTimeFollowsContent(t *testing.T) {
	b := &Blog{Content: strings.Repeat("word ", 600), ReadingTime: 3}

	// No content change: estimate stays put even if stale.
	b.ApplyUpdateHooks(ChangeSet{Title: true}, time.Now())
	assert.Equal(t, 3, b.ReadingTime)

	b.Content = strings.Repeat("word ", 1000)
	b.ApplyUpdateHooks(ChangeSet{Content: true}, time.Now())
	assert.Equal(t, 5, b.ReadingTime)
}

func TestApplyUpdateHooks_TouchesUpdatedAt(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &Blog{CreatedAt: created, UpdatedAt: created}

	now := created.Add(time.Hour)
	b.ApplyUpdateHooks(ChangeSet{}, now)

	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, now, b.UpdatedAt)
}
