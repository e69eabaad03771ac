package runner

import (
	"strings"

	"ninequiz/internal/question"
	"ninequiz/internal/session"
)

// Outcome classifies a single answered question.
type Outcome int

const (
	// Incorrect marks a selection that differs from the answer index.
	Incorrect Outcome = iota
	// Correct marks a selection equal to the answer index.
	Correct
)

// String returns a stable name for logs and reports.
func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

// Form selects the long or short rendering of an outcome.
type Form int

const (
	FormLong Form = iota
	FormShort
)

// Judge compares a 1-based selection with the question's answer index.
func Judge(q question.Question, selection int) Outcome {
	if selection == q.AnswerIndex() {
		return Correct
	}
	return Incorrect
}

// Render returns the message for an outcome from the session templates.
func Render(outcome Outcome, data *session.Data, form Form) string {
	switch {
	case outcome == Correct && form == FormShort:
		return data.SimpleCorrectMessage
	case outcome == Correct:
		return data.CorrectMessage
	case form == FormShort:
		return data.SimpleIncorrectMessage
	default:
		return data.IncorrectMessage
	}
}

// JoinOutcomes renders outcomes in short form separated by ", ".
func JoinOutcomes(outcomes []Outcome, data *session.Data) string {
	parts := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		parts = append(parts, Render(outcome, data, FormShort))
	}
	return strings.Join(parts, ", ")
}
