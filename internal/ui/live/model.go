package live

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ninequiz/internal/question"
	"ninequiz/internal/runner"
	"ninequiz/internal/session"
)

// Model runs a quiz interactively using Bubble Tea.
type Model struct {
	questions question.Set
	data      *session.Data
	state     State
	table     table.Model
	observer  runner.RunObserver
	noColor   bool
}

// Options configures the live UI model.
type Options struct {
	NoColor  bool
	Observer runner.RunObserver
}

// NewModel constructs a live quiz model over a question set.
func NewModel(questions question.Set, data *session.Data, opts Options) Model {
	if data == nil {
		data = session.Default()
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(questions.Len()+1),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		questions: questions,
		data:      data,
		table:     t,
		observer:  opts.Observer,
		noColor:   opts.NoColor,
	}
}

// Init has no startup command; the model waits for keys.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps key presses to actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		action, ok := actionForKey(typed)
		if !ok {
			return m, nil
		}
		if action.Kind == ActionConfirm && m.state.Stage == StageFinished {
			return m, tea.Quit
		}
		before := m.state
		m.state = Reduce(m.state, m.questions, action)
		m.notify(before)
		if m.state.Aborted || (action.Kind == ActionQuit && m.state.Stage == StageFinished) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// notify reports answers judged by the last transition.
func (m *Model) notify(before State) {
	if m.state.Result.Total() > before.Result.Total() {
		index := m.state.Result.Total() - 1
		if m.observer != nil {
			m.observer.OnAnswer(runner.AnswerEvent{
				Number:    index + 1,
				Question:  m.questions.At(index),
				Selection: m.state.Result.Selections[index],
				Outcome:   m.state.Result.Outcomes[index],
				Attempts:  1,
			})
		}
	}
	if m.state.Stage == StageFinished && before.Stage != StageFinished {
		m.table.SetRows(rowsForResult(m.questions, m.state.Result, m.data))
	}
}

// View renders the current stage.
func (m Model) View() string {
	header := renderHeader(m.data, m.state, m.questions.Len(), m.noColor)
	switch m.state.Stage {
	case StageFinished:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.table.View(),
			renderSummary(m.data, m.state.Result, m.noColor),
			renderFooter("enter: quit", m.noColor),
		)
	case StageJudged:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			renderQuestion(m.data, m.state, m.questions.At(m.state.Index), m.noColor),
			renderJudgement(m.data, m.state, m.noColor),
			renderFooter("enter: next  q: quit", m.noColor),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			renderQuestion(m.data, m.state, m.questions.At(m.state.Index), m.noColor),
			renderFooter("↑/↓ or number: choose  enter: answer  q: quit", m.noColor),
		)
	}
}

// State returns the quiz progress.
func (m Model) State() State {
	return m.state
}

// actionForKey maps a key press to a quiz action.
func actionForKey(msg tea.KeyMsg) (Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return Action{Kind: ActionQuit}, true
	case tea.KeyUp:
		return Action{Kind: ActionUp}, true
	case tea.KeyDown:
		return Action{Kind: ActionDown}, true
	case tea.KeyEnter, tea.KeySpace:
		return Action{Kind: ActionConfirm}, true
	case tea.KeyBackspace:
		return Action{Kind: ActionBackspace}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return Action{}, false
		}
		r := msg.Runes[0]
		switch {
		case r >= '0' && r <= '9':
			return Action{Kind: ActionDigit, Digit: r}, true
		case r == 'k':
			return Action{Kind: ActionUp}, true
		case r == 'j':
			return Action{Kind: ActionDown}, true
		case r == 'q':
			return Action{Kind: ActionQuit}, true
		}
	}
	return Action{}, false
}
