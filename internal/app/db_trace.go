package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace flattens a statement to one line and caps its
// length before it lands in span attributes.
func formatDBQueryForTrace(query string) string {
	compact := collapseWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(compact) > maxTracedQueryLength {
		compact = compact[:maxTracedQueryLength] + "..."
	}
	return compact
}
