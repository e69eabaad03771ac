package runner

import "time"

// Result is the ordered record of a quiz run: one selection and one outcome per
// answered question.
type Result struct {
	Selections []int
	Outcomes   []Outcome
}

func (r *Result) add(selection int, outcome Outcome) {
	r.Selections = append(r.Selections, selection)
	r.Outcomes = append(r.Outcomes, outcome)
}

// Total returns the number of answered questions.
func (r Result) Total() int {
	return len(r.Outcomes)
}

// Correct returns the number of correct outcomes.
func (r Result) Correct() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome == Correct {
			count++
		}
	}
	return count
}

// Incorrect returns the number of incorrect outcomes.
func (r Result) Incorrect() int {
	return r.Total() - r.Correct()
}

// Report is the JSON results document written after a run.
type Report struct {
	RunID      string           `json:"run_id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Completed  bool             `json:"completed"`
	Error      string           `json:"error,omitempty"`
	Questions  []QuestionReport `json:"questions"`
	Summary    Summary          `json:"summary"`
}

// QuestionReport records a single question and the user's selection.
type QuestionReport struct {
	Number    int      `json:"number"`
	Statement string   `json:"statement"`
	Choices   []string `json:"choices"`
	Answer    int      `json:"answer"`
	Selection *int     `json:"selection"`
	Outcome   string   `json:"outcome,omitempty"`
}

// Summary aggregates accuracy metrics for a run.
type Summary struct {
	QuestionsTotal     int     `json:"questions_total"`
	QuestionsAnswered  int     `json:"questions_answered"`
	QuestionsCorrect   int     `json:"questions_correct"`
	QuestionsIncorrect int     `json:"questions_incorrect"`
	Accuracy           float64 `json:"accuracy"`
}
