package utils

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe token from display text: diacritics are
// folded to ASCII, everything outside [a-z0-9-] is dropped and hyphen
// runs are collapsed.
func Slugify(input string) string {
	ascii := removeDiacritics(input)

	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugHyphens.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// removeDiacritics decomposes to NFD and strips combining marks, so
// "Crème Brûlée" becomes "Creme Brulee".
func removeDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}

// maxSlugProbes bounds the sequential collision probe.
const maxSlugProbes = 100

// UniqueSlug probes base, base-1, base-2, ... until exists reports the
// candidate free. The suffix order is deterministic so generated slugs
// are reproducible.
func UniqueSlug(ctx context.Context, base string, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; i <= maxSlugProbes; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("failed to generate unique slug for %q after %d attempts", base, maxSlugProbes)
}
