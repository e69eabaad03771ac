package runner

import (
	"context"
	"fmt"
	"io"

	"ninequiz/internal/question"
	"ninequiz/internal/session"
)

// Fixed output markers.
const (
	PromptMarker = ">"
	ResultHeader = "[結果発表]"
)

// DefaultInvalidInputMessage is printed before re-prompting after a non-integer line.
const DefaultInvalidInputMessage = "数字を入力してください。"

// InvalidInputPolicy decides what happens when an input line is not an integer.
type InvalidInputPolicy string

const (
	// InvalidReprompt prints a notice and reads another line for the same question.
	InvalidReprompt InvalidInputPolicy = "reprompt"
	// InvalidAbort fails the run with ErrFormat.
	InvalidAbort InvalidInputPolicy = "abort"
)

// Phase is the lifecycle stage of a Runner.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhaseFinished
)

// Options configures a Runner.
type Options struct {
	OnInvalid InvalidInputPolicy
	// MaxAttempts bounds invalid lines per question under InvalidReprompt; 0 is unlimited.
	MaxAttempts         int
	InvalidInputMessage string
	Observer            RunObserver
}

// Runner prompts for each question in order, judges the answers, and prints a
// summary. A Runner runs once.
type Runner struct {
	questions question.Set
	data      *session.Data
	input     *lineInput
	out       io.Writer
	opts      Options
	observer  RunObserver
	phase     Phase
}

// New prepares a runner. The input is owned by the runner from here on and is
// closed when Start returns, if it implements io.Closer. A nil data uses the
// default templates.
func New(questions question.Set, data *session.Data, in io.Reader, out io.Writer, opts Options) *Runner {
	if data == nil {
		data = session.Default()
	}
	if opts.OnInvalid == "" {
		opts.OnInvalid = InvalidReprompt
	}
	if opts.InvalidInputMessage == "" {
		opts.InvalidInputMessage = DefaultInvalidInputMessage
	}
	var observer RunObserver = nopObserver{}
	if opts.Observer != nil {
		observer = opts.Observer
	}
	return &Runner{
		questions: questions,
		data:      data,
		input:     newLineInput(in),
		out:       out,
		opts:      opts,
		observer:  observer,
		phase:     PhaseSetup,
	}
}

// Data returns the session templates shared with the caller.
func (r *Runner) Data() *session.Data {
	return r.data
}

// QuestionCount returns the number of questions in the run.
func (r *Runner) QuestionCount() int {
	return r.questions.Len()
}

// Phase reports the current lifecycle stage.
func (r *Runner) Phase() Phase {
	return r.phase
}

// Start runs the quiz to completion. On failure the partial result is returned
// with the error. Cancelling ctx interrupts a pending read; the line being
// typed is discarded.
func (r *Runner) Start(ctx context.Context) (result Result, err error) {
	if r.phase != PhaseSetup {
		return Result{}, ErrAlreadyStarted
	}
	r.phase = PhaseRunning
	defer func() {
		r.phase = PhaseFinished
		if closeErr := r.input.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close input: %w", closeErr)
		}
		r.observer.OnRunEnd(result, err)
	}()

	total := r.questions.Len()
	r.observer.OnRunStart(total)
	fmt.Fprintln(r.out, r.data.StartMessage)

	result = Result{
		Selections: make([]int, 0, total),
		Outcomes:   make([]Outcome, 0, total),
	}
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		number := i + 1
		q := r.questions.At(i)
		r.viewQuestion(number, q)

		selection, attempts, err := r.readSelection(ctx, number)
		if err != nil {
			return result, err
		}
		outcome := Judge(q, selection)
		fmt.Fprintf(r.out, "%s\n\n", Render(outcome, r.data, FormLong))
		result.add(selection, outcome)
		r.observer.OnAnswer(AnswerEvent{
			Number:    number,
			Question:  q,
			Selection: selection,
			Outcome:   outcome,
			Attempts:  attempts,
		})
	}
	r.viewResult(result.Outcomes)
	return result, nil
}

// viewQuestion prints the numbered statement and its numbered choices.
func (r *Runner) viewQuestion(number int, q question.Question) {
	fmt.Fprintf(r.out, "%s%s\n", r.data.QuestionNumber(number), q.Statement())
	for i, choice := range q.Choices() {
		fmt.Fprintf(r.out, "%s%s\n", r.data.ChoiceNumber(i+1), choice)
	}
}

// readSelection prompts until a valid integer is read or the policy gives up.
func (r *Runner) readSelection(ctx context.Context, number int) (int, int, error) {
	attempts := 0
	for {
		fmt.Fprint(r.out, PromptMarker)
		line, err := r.input.ReadLine(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, attempts, ctxErr
			}
			return 0, attempts, fmt.Errorf("question %d: %w", number, err)
		}
		attempts++
		selection, err := ParseSelection(line)
		if err == nil {
			return selection, attempts, nil
		}
		r.observer.OnInvalidInput(number, line, err)
		if r.opts.OnInvalid == InvalidAbort {
			return 0, attempts, fmt.Errorf("question %d: %w", number, err)
		}
		if r.opts.MaxAttempts > 0 && attempts >= r.opts.MaxAttempts {
			return 0, attempts, fmt.Errorf("question %d: giving up after %d attempts: %w", number, attempts, err)
		}
		fmt.Fprintln(r.out, r.opts.InvalidInputMessage)
	}
}

// viewResult prints the result header and the short-form outcomes.
func (r *Runner) viewResult(outcomes []Outcome) {
	fmt.Fprintln(r.out, ResultHeader)
	fmt.Fprintln(r.out, JoinOutcomes(outcomes, r.data))
}
