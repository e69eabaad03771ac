package live

import (
	"strconv"
	"strings"

	"ninequiz/internal/question"
)

// formatText collapses whitespace and truncates to limit runes.
func formatText(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatSelection shows the chosen choice text, or the raw number when it is out of range.
func formatSelection(q question.Question, selection int) string {
	if choice, ok := q.Choice(selection); ok {
		return formatText(choice, 40)
	}
	return "#" + strconv.Itoa(selection)
}
