package question

import "strings"

// normalizeText trims surrounding whitespace from file-supplied text.
func normalizeText(value string) string {
	return strings.TrimSpace(value)
}
