package runner

import "ninequiz/internal/question"

// AnswerEvent carries the judgement of a single question.
type AnswerEvent struct {
	// Number is the 1-based question number.
	Number    int
	Question  question.Question
	Selection int
	Outcome   Outcome
	// Attempts counts the lines read for this question, including rejected ones.
	Attempts int
}

// RunObserver receives run lifecycle events for logging or reporting.
type RunObserver interface {
	// OnRunStart signals the start of a run over total questions.
	OnRunStart(total int)
	// OnInvalidInput reports a rejected input line.
	OnInvalidInput(number int, line string, err error)
	// OnAnswer delivers a judged answer.
	OnAnswer(event AnswerEvent)
	// OnRunEnd signals run completion; err is nil when every question was answered.
	OnRunEnd(result Result, err error)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []RunObserver

// OnRunStart forwards to every observer.
func (m MultiObserver) OnRunStart(total int) {
	for _, observer := range m {
		if observer != nil {
			observer.OnRunStart(total)
		}
	}
}

// OnInvalidInput forwards to every observer.
func (m MultiObserver) OnInvalidInput(number int, line string, err error) {
	for _, observer := range m {
		if observer != nil {
			observer.OnInvalidInput(number, line, err)
		}
	}
}

// OnAnswer forwards to every observer.
func (m MultiObserver) OnAnswer(event AnswerEvent) {
	for _, observer := range m {
		if observer != nil {
			observer.OnAnswer(event)
		}
	}
}

// OnRunEnd forwards to every observer.
func (m MultiObserver) OnRunEnd(result Result, err error) {
	for _, observer := range m {
		if observer != nil {
			observer.OnRunEnd(result, err)
		}
	}
}

type nopObserver struct{}

func (nopObserver) OnRunStart(int)                    {}
func (nopObserver) OnInvalidInput(int, string, error) {}
func (nopObserver) OnAnswer(AnswerEvent)              {}
func (nopObserver) OnRunEnd(Result, error)            {}
