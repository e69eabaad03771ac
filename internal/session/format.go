package session

import (
	"strconv"
	"strings"
)

// Placeholder is the only token recognized in numbering templates.
const Placeholder = "{num}"

// Format replaces every occurrence of {num} in template with number.
func Format(number int, template string) string {
	return strings.ReplaceAll(template, Placeholder, strconv.Itoa(number))
}
