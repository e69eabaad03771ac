package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ninequiz/internal/question"
	"ninequiz/internal/runner"
	"ninequiz/internal/session"
)

const cursorMarker = "›"

// renderHeader renders the start message and progress line.
func renderHeader(data *session.Data, state State, total int, noColor bool) string {
	line := data.StartMessage
	if state.Stage != StageFinished {
		line += " (" + strconv.Itoa(state.Index+1) + "/" + strconv.Itoa(total) + ")"
	}
	return stylize(line, noColor, lipgloss.Color("33"), true)
}

// renderQuestion renders the numbered statement and choices with the cursor.
func renderQuestion(data *session.Data, state State, q question.Question, noColor bool) string {
	var builder strings.Builder
	builder.WriteString(data.QuestionNumber(state.Index + 1))
	builder.WriteString(q.Statement())
	for i, choice := range q.Choices() {
		builder.WriteString("\n")
		marker := "  "
		if i == state.Cursor && state.Stage == StageAsking {
			marker = cursorMarker + " "
		}
		line := marker + data.ChoiceNumber(i+1) + choice
		if i == state.Cursor && state.Stage == StageAsking {
			line = stylize(line, noColor, lipgloss.Color("212"), true)
		}
		builder.WriteString(line)
	}
	if state.Stage == StageAsking {
		builder.WriteString("\n")
		builder.WriteString(runner.PromptMarker)
		builder.WriteString(state.Typed)
	}
	return builder.String()
}

// renderJudgement renders the long-form outcome of the last answer.
func renderJudgement(data *session.Data, state State, noColor bool) string {
	outcome, ok := state.LastOutcome()
	if !ok {
		return ""
	}
	color := lipgloss.Color("196")
	if outcome == runner.Correct {
		color = lipgloss.Color("42")
	}
	return stylize(runner.Render(outcome, data, runner.FormLong), noColor, color, true)
}

// renderSummary renders the result header and the short-form outcomes.
func renderSummary(data *session.Data, result runner.Result, noColor bool) string {
	score := strconv.Itoa(result.Correct()) + "/" + strconv.Itoa(result.Total())
	lines := []string{
		runner.ResultHeader,
		runner.JoinOutcomes(result.Outcomes, data),
		stylize(score, noColor, lipgloss.Color("242"), false),
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the key hints.
func renderFooter(hint string, noColor bool) string {
	return stylize(hint, noColor, lipgloss.Color("244"), false)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
