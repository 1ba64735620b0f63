package util

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeTitle canonicalizes a song title for catalog dedup: surrounding
// whitespace is trimmed, runs of inner whitespace collapse to one space, and
// the result is Unicode case-folded so "Example" and "example" coalesce.
func NormalizeTitle(title string) string {
	collapsed := strings.Join(strings.Fields(title), " ")
	return cases.Fold().String(collapsed)
}
