package question

import "fmt"

// Set is a fixed, ordered collection of at least one question.
type Set struct {
	questions []Question
}

// NewSet returns a set holding the given questions in order.
func NewSet(questions ...Question) (Set, error) {
	if len(questions) == 0 {
		return Set{}, fmt.Errorf("new question set: %w: at least one question is required", ErrInvalidArgument)
	}
	items := make([]Question, len(questions))
	copy(items, questions)
	return Set{questions: items}, nil
}

// Len returns the number of questions.
func (s Set) Len() int {
	return len(s.questions)
}

// At returns the question at a 0-based position.
func (s Set) At(index int) Question {
	return s.questions[index]
}

// All returns a copy of the questions in order.
func (s Set) All() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}
