package question

// Question is an immutable multiple-choice question. Values are created by Builder.
type Question struct {
	statement   string
	choices     []string
	answerIndex int
}

// Statement returns the question text.
func (q Question) Statement() string {
	return q.statement
}

// Choices returns a copy of the choices in insertion order.
func (q Question) Choices() []string {
	out := make([]string, len(q.choices))
	copy(out, q.choices)
	return out
}

// Choice returns the choice at a 1-based position.
func (q Question) Choice(number int) (string, bool) {
	if number < 1 || number > len(q.choices) {
		return "", false
	}
	return q.choices[number-1], true
}

// ChoiceCount returns the number of choices.
func (q Question) ChoiceCount() int {
	return len(q.choices)
}

// AnswerIndex returns the 1-based position of the correct choice.
func (q Question) AnswerIndex() int {
	return q.answerIndex
}

// Answer returns the text of the correct choice.
func (q Question) Answer() string {
	return q.choices[q.answerIndex-1]
}
