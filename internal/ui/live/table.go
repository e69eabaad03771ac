package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"ninequiz/internal/question"
	"ninequiz/internal/runner"
	"ninequiz/internal/session"
)

// defaultColumns defines the results table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: 36},
		{Title: "Answer", Width: 16},
		{Title: "Selected", Width: 16},
		{Title: "Result", Width: 6},
	}
}

// columnsForWidth widens the question column to use the terminal width.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for i, column := range columns {
		if i != 1 {
			fixed += column.Width + 2
		}
	}
	if remaining := width - fixed - 2; remaining > columns[1].Width {
		columns[1].Width = remaining
	}
	return columns
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForResult converts a finished run into table rows.
func rowsForResult(questions question.Set, result runner.Result, data *session.Data) []table.Row {
	rows := make([]table.Row, 0, questions.Len())
	for i, q := range questions.All() {
		selected := "-"
		outcome := "-"
		if i < result.Total() {
			selected = formatSelection(q, result.Selections[i])
			outcome = runner.Render(result.Outcomes[i], data, runner.FormShort)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatText(q.Statement(), 80),
			formatText(q.Answer(), 40),
			selected,
			outcome,
		})
	}
	return rows
}
