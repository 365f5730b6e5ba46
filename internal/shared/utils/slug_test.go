package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Hello World Today", "hello-world-today"},
		{"Our Launch", "our-launch"},
		{"  Multiple   Spaces  ", "multiple-spaces"},
		{"Crème Brûlée & Friends!", "creme-brulee-friends"},
		{"UPPER-case Title", "upper-case-title"},
		{"100% Organic (really)", "100-organic-really"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.input), "input: %q", tc.input)
	}
}

func TestUniqueSlug_NoCollision(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) {
		return false, nil
	}

	slug, err := UniqueSlug(context.Background(), "our-launch", exists)
	require.NoError(t, err)
	assert.Equal(t, "our-launch", slug)
}

func TestUniqueSlug_SequentialSuffixes(t *testing.T) {
	taken := map[string]bool{}
	exists := func(ctx context.Context, slug string) (bool, error) {
		return taken[slug], nil
	}

	// Repeated generation against the same collection yields the
	// deterministic -1, -2, ... order.
	wants := []string{"our-launch", "our-launch-1", "our-launch-2", "our-launch-3"}
	for _, want := range wants {
		slug, err := UniqueSlug(context.Background(), "our-launch", exists)
		require.NoError(t, err)
		assert.Equal(t, want, slug)
		taken[slug] = true
	}
}

func TestUniqueSlug_ProbeCap(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) {
		return true, nil
	}

	_, err := UniqueSlug(context.Background(), "busy", exists)
	require.Error(t, err)
}

func TestUniqueSlug_PropagatesLookupError(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) {
		return false, fmt.Errorf("connection refused")
	}

	_, err := UniqueSlug(context.Background(), "anything", exists)
	require.Error(t, err)
}
