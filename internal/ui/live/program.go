package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ninequiz/internal/question"
	"ninequiz/internal/runner"
	"ninequiz/internal/session"
)

// ErrAborted indicates the user quit before answering every question.
var ErrAborted = errors.New("quiz aborted")

// Run drives a quiz through a Bubble Tea program on the given streams and
// returns the collected result.
func Run(ctx context.Context, questions question.Set, data *session.Data, in io.Reader, out io.Writer, opts Options) (result runner.Result, err error) {
	if opts.Observer != nil {
		opts.Observer.OnRunStart(questions.Len())
		defer func() { opts.Observer.OnRunEnd(result, err) }()
	}
	model := NewModel(questions, data, opts)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return runner.Result{}, fmt.Errorf("run live ui: %w", err)
	}
	finished, ok := final.(Model)
	if !ok {
		return runner.Result{}, fmt.Errorf("run live ui: unexpected model %T", final)
	}
	state := finished.State()
	if state.Aborted || state.Stage != StageFinished {
		return state.Result, ErrAborted
	}
	return state.Result, nil
}
