package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"ninequiz/internal/session"
	"ninequiz/internal/testutil"
)

// TestRunCorrectAnswer verifies the single-question correct example.
func TestRunCorrectAnswer(t *testing.T) {
	set := testutil.QuestionSet(t, testutil.QuestionSpec{Statement: "2+2=?", Answer: 2, Choices: []string{"3", "4", "5"}})
	data := session.Default()
	var out bytes.Buffer
	r := New(set, data, strings.NewReader("2\n"), &out, Options{})

	result, err := r.Start(testutil.Context(t, time.Second))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(result.Outcomes) != 1 || result.Outcomes[0] != Correct {
		t.Fatalf("expected one correct outcome, got %+v", result.Outcomes)
	}
	output := out.String()
	if !strings.Contains(output, data.CorrectMessage) {
		t.Fatalf("expected correct message in %q", output)
	}
	if got := lastLine(output); got != data.SimpleCorrectMessage {
		t.Fatalf("expected summary %q, got %q", data.SimpleCorrectMessage, got)
	}
}

// TestRunIncorrectAnswer verifies the single-question incorrect example.
func TestRunIncorrectAnswer(t *testing.T) {
	set := testutil.QuestionSet(t, testutil.QuestionSpec{Statement: "2+2=?", Answer: 2, Choices: []string{"3", "4", "5"}})
	data := session.Default()
	var out bytes.Buffer
	r := New(set, data, strings.NewReader("1\n"), &out, Options{})

	result, err := r.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.Outcomes[0] != Incorrect {
		t.Fatalf("expected incorrect outcome")
	}
	if !strings.Contains(out.String(), data.IncorrectMessage) {
		t.Fatalf("expected incorrect message in %q", out.String())
	}
	if got := lastLine(out.String()); got != data.SimpleIncorrectMessage {
		t.Fatalf("expected summary %q, got %q", data.SimpleIncorrectMessage, got)
	}
}

// TestRunOutputLayout verifies the exact transcript for a two-question run.
func TestRunOutputLayout(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	var out bytes.Buffer
	r := New(set, nil, strings.NewReader("2\n2\n"), &out, Options{})
	if _, err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	want := strings.Join([]string{
		"NineQuiz スタート!",
		"問1:2+2=?",
		"1.3",
		"2.4",
		"3.5",
		">正解！",
		"",
		"問2:3-2=?",
		"1.1",
		"2.2",
		">不正解･･････。",
		"",
		"[結果発表]",
		"○, ☓",
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("unexpected transcript:\n%s\nwant:\n%s", out.String(), want)
	}
}

// TestRunOutcomesFollowInputs verifies outcome[i] is correct iff input[i] matches.
func TestRunOutcomesFollowInputs(t *testing.T) {
	set := testutil.QuestionSet(t,
		testutil.QuestionSpec{Statement: "a", Answer: 1, Choices: []string{"x", "y"}},
		testutil.QuestionSpec{Statement: "b", Answer: 2, Choices: []string{"x", "y"}},
		testutil.QuestionSpec{Statement: "c", Answer: 3, Choices: []string{"x", "y", "z"}},
		testutil.QuestionSpec{Statement: "d", Answer: 1, Choices: []string{"x"}},
	)
	inputs := []int{1, 1, 3, 7}
	lines := make([]string, len(inputs))
	for i, value := range inputs {
		lines[i] = " " + string(rune('0'+value)) + " "
	}
	var out bytes.Buffer
	result, err := New(set, nil, strings.NewReader(strings.Join(lines, "\n")), &out, Options{}).Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.Total() != set.Len() {
		t.Fatalf("expected %d outcomes, got %d", set.Len(), result.Total())
	}
	for i, value := range inputs {
		wantCorrect := value == set.At(i).AnswerIndex()
		if (result.Outcomes[i] == Correct) != wantCorrect {
			t.Fatalf("question %d: input %d gave %s", i+1, value, result.Outcomes[i])
		}
		if result.Selections[i] != value {
			t.Fatalf("question %d: expected selection %d, got %d", i+1, value, result.Selections[i])
		}
	}
	if result.Correct() != 2 || result.Incorrect() != 2 {
		t.Fatalf("unexpected tally %d/%d", result.Correct(), result.Incorrect())
	}
}

// TestRunCustomTemplates verifies custom session text is used verbatim.
func TestRunCustomTemplates(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	data := &session.Data{
		StartMessage:             "Nine Quiz Start!",
		QuestionNumberText:       "Number{num}: ",
		QuestionChoiceNumberText: "Q{num}. ",
		CorrectMessage:           "That's right!",
		IncorrectMessage:         "That's wrong...",
		SimpleCorrectMessage:     "o",
		SimpleIncorrectMessage:   "x",
	}
	var out bytes.Buffer
	if _, err := New(set, data, strings.NewReader("2\n2\n"), &out, Options{}).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	output := out.String()
	for _, want := range []string{"Nine Quiz Start!", "Number1: 2+2=?", "Q3. 5", "That's right!", "That's wrong..."} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	if got := lastLine(output); got != "o, x" {
		t.Fatalf("unexpected summary %q", got)
	}
}

// TestRunSharedDataChangesAreVisible verifies the runner reads templates at use time.
func TestRunSharedDataChangesAreVisible(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	data := session.Default()
	r := New(set, data, strings.NewReader("2\n1\n"), &bytes.Buffer{}, Options{})
	data.SimpleCorrectMessage = "OK"
	if r.Data().SimpleCorrectMessage != "OK" {
		t.Fatalf("expected runner to share session data")
	}
	if r.QuestionCount() != 2 {
		t.Fatalf("expected 2 questions, got %d", r.QuestionCount())
	}
}

// TestRunRepromptsOnInvalidInput verifies the default re-prompt policy.
func TestRunRepromptsOnInvalidInput(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	observer := &recordingObserver{}
	var out bytes.Buffer
	r := New(set, nil, strings.NewReader("two\n\n2\n1\n"), &out, Options{Observer: observer})
	result, err := r.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.Correct() != 2 {
		t.Fatalf("expected two correct answers, got %d", result.Correct())
	}
	if strings.Count(out.String(), DefaultInvalidInputMessage) != 2 {
		t.Fatalf("expected two re-prompts in %q", out.String())
	}
	if len(observer.invalid) != 2 {
		t.Fatalf("expected two invalid input events, got %d", len(observer.invalid))
	}
	if observer.answers[0].Attempts != 3 {
		t.Fatalf("expected 3 attempts on first question, got %d", observer.answers[0].Attempts)
	}
}

// TestRunRepromptMaxAttempts verifies the attempt bound aborts the run.
func TestRunRepromptMaxAttempts(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	input := testutil.NewCloseCounter("a", "b", "2")
	_, err := New(set, nil, input, &bytes.Buffer{}, Options{MaxAttempts: 2}).Start(context.Background())
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if input.Closes != 1 {
		t.Fatalf("expected input closed once, got %d", input.Closes)
	}
}

// TestRunAbortPolicy verifies malformed input fails the run and releases input.
func TestRunAbortPolicy(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	input := testutil.NewCloseCounter("2", "one")
	observer := &recordingObserver{}
	var out bytes.Buffer
	r := New(set, nil, input, &out, Options{OnInvalid: InvalidAbort, Observer: observer})
	result, err := r.Start(context.Background())
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if result.Total() != 1 {
		t.Fatalf("expected partial result with 1 answer, got %d", result.Total())
	}
	if input.Closes != 1 {
		t.Fatalf("expected input closed once, got %d", input.Closes)
	}
	if strings.Contains(out.String(), ResultHeader) {
		t.Fatalf("did not expect a summary after abort")
	}
	if !errors.Is(observer.endErr, ErrFormat) {
		t.Fatalf("expected observer to see the abort, got %v", observer.endErr)
	}
	if r.Phase() != PhaseFinished {
		t.Fatalf("expected finished phase, got %d", r.Phase())
	}
}

// TestRunInputClosedEarly verifies running out of input is reported.
func TestRunInputClosedEarly(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	input := testutil.NewCloseCounter("2")
	_, err := New(set, nil, input, &bytes.Buffer{}, Options{}).Start(context.Background())
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected input closed error, got %v", err)
	}
	if input.Closes != 1 {
		t.Fatalf("expected input closed once, got %d", input.Closes)
	}
}

// TestRunStartTwice verifies a runner cannot be restarted.
func TestRunStartTwice(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	input := testutil.NewCloseCounter("2", "1")
	r := New(set, nil, input, &bytes.Buffer{}, Options{})
	if r.Phase() != PhaseSetup {
		t.Fatalf("expected setup phase")
	}
	if _, err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := r.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected already started, got %v", err)
	}
	if input.Closes != 1 {
		t.Fatalf("expected input closed once, got %d", input.Closes)
	}
}

// TestRunCanceledContext verifies cancellation is honored between questions.
func TestRunCanceledContext(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	input := testutil.NewCloseCounter("2", "1")
	_, err := New(set, nil, input, &bytes.Buffer{}, Options{}).Start(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if input.Closes != 1 {
		t.Fatalf("expected input closed once, got %d", input.Closes)
	}
}

// TestRunObserverLifecycle verifies ordered observer events.
func TestRunObserverLifecycle(t *testing.T) {
	set := testutil.ArithmeticSet(t)
	first := &recordingObserver{}
	second := &recordingObserver{}
	opts := Options{Observer: MultiObserver{first, nil, second}}
	if _, err := New(set, nil, strings.NewReader("2\n1\n"), &bytes.Buffer{}, opts).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	for _, observer := range []*recordingObserver{first, second} {
		if observer.total != 2 {
			t.Fatalf("expected total 2, got %d", observer.total)
		}
		if len(observer.answers) != 2 || observer.answers[1].Number != 2 {
			t.Fatalf("unexpected answers: %+v", observer.answers)
		}
		if !observer.ended || observer.endErr != nil {
			t.Fatalf("expected clean run end")
		}
	}
}

type recordingObserver struct {
	total   int
	invalid []string
	answers []AnswerEvent
	ended   bool
	endErr  error
	result  Result
}

func (o *recordingObserver) OnRunStart(total int) { o.total = total }

func (o *recordingObserver) OnInvalidInput(_ int, line string, _ error) {
	o.invalid = append(o.invalid, line)
}

func (o *recordingObserver) OnAnswer(event AnswerEvent) { o.answers = append(o.answers, event) }

func (o *recordingObserver) OnRunEnd(result Result, err error) {
	o.ended = true
	o.result = result
	o.endErr = err
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	return lines[len(lines)-1]
}

type pipeInput struct {
	*io.PipeReader
	closes int
}

func (p *pipeInput) Close() error {
	p.closes++
	return p.PipeReader.Close()
}

// TestRunCancelDuringRead verifies cancellation interrupts a blocked prompt
// without judging anything and closes the input once.
func TestRunCancelDuringRead(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()
	input := &pipeInput{PipeReader: reader}
	data := session.Default()
	var out bytes.Buffer
	r := New(testutil.ArithmeticSet(t), data, input, &out, Options{})

	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	result, err := r.Start(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Total() != 0 {
		t.Fatalf("expected no judgements, got %+v", result)
	}
	if input.closes != 1 {
		t.Fatalf("expected one close, got %d", input.closes)
	}
	output := out.String()
	if strings.Contains(output, data.CorrectMessage) || strings.Contains(output, data.IncorrectMessage) {
		t.Fatalf("did not expect a judgement in %q", output)
	}
	if strings.Contains(output, ResultHeader) {
		t.Fatalf("did not expect a summary in %q", output)
	}
}

// TestRunRepromptsOverlongLine verifies a very long line is treated as invalid input.
func TestRunRepromptsOverlongLine(t *testing.T) {
	long := strings.Repeat("9x", 70000)
	input := testutil.NewCloseCounter(long, "2", "1")
	observer := &recordingObserver{}
	var out bytes.Buffer
	r := New(testutil.ArithmeticSet(t), nil, input, &out, Options{Observer: observer})

	result, err := r.Start(testutil.Context(t, 0))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if result.Correct() != 2 {
		t.Fatalf("expected two correct answers, got %+v", result)
	}
	if len(observer.invalid) != 1 || len(observer.invalid[0]) != len(long) {
		t.Fatalf("expected the long line to be rejected once, got %d rejections", len(observer.invalid))
	}
	if !strings.Contains(out.String(), DefaultInvalidInputMessage) {
		t.Fatalf("expected reprompt message")
	}
}
