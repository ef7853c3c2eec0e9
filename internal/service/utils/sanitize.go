package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from free-form user text. Diary entries,
// notes and fun-zone content are stored as plain text; markup in them is
// always an injection attempt, never intent.
func SanitizeText(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

func SanitizeAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if clean := SanitizeText(v); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}
