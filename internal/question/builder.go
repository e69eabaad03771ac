package question

import "fmt"

// Builder accumulates question fields and validates each one as it is supplied.
type Builder struct {
	statement    string
	hasStatement bool
	choices      []string
	seen         map[string]struct{}
	answerIndex  int
	hasAnswer    bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{seen: map[string]struct{}{}}
}

// SetStatement stores the question text, replacing any previous value.
func (b *Builder) SetStatement(text string) error {
	if text == "" {
		return fmt.Errorf("set statement: %w: statement is empty", ErrInvalidArgument)
	}
	b.statement = text
	b.hasStatement = true
	return nil
}

// AddChoice appends a choice. Text already present is ignored.
func (b *Builder) AddChoice(text string) error {
	if text == "" {
		return fmt.Errorf("add choice: %w: choice is empty", ErrInvalidArgument)
	}
	if b.seen == nil {
		b.seen = map[string]struct{}{}
	}
	if _, exists := b.seen[text]; exists {
		return nil
	}
	b.seen[text] = struct{}{}
	b.choices = append(b.choices, text)
	return nil
}

// SetAnswerIndex stores the 1-based answer position. The bound is checked against
// the choices added so far plus one; Build checks it again against the final count.
func (b *Builder) SetAnswerIndex(index int) error {
	if index < 1 || index > len(b.choices)+1 {
		return fmt.Errorf("set answer index: %w: %d not in [1, %d]", ErrOutOfRange, index, len(b.choices)+1)
	}
	b.answerIndex = index
	b.hasAnswer = true
	return nil
}

// ChoiceCount returns the number of distinct choices added so far.
func (b *Builder) ChoiceCount() int {
	return len(b.choices)
}

// Build assembles an immutable Question.
func (b *Builder) Build() (Question, error) {
	switch {
	case !b.hasStatement:
		return Question{}, fmt.Errorf("build question: %w: statement is not set", ErrInvalidState)
	case len(b.choices) == 0:
		return Question{}, fmt.Errorf("build question: %w: no choices added", ErrInvalidState)
	case !b.hasAnswer:
		return Question{}, fmt.Errorf("build question: %w: answer index is not set", ErrInvalidState)
	case b.answerIndex < 1 || b.answerIndex > len(b.choices):
		return Question{}, fmt.Errorf("build question: %w: answer index %d exceeds %d choices", ErrInvalidState, b.answerIndex, len(b.choices))
	}
	choices := make([]string, len(b.choices))
	copy(choices, b.choices)
	return Question{
		statement:   b.statement,
		choices:     choices,
		answerIndex: b.answerIndex,
	}, nil
}

// New builds a question in one call.
func New(statement string, answerIndex int, choices ...string) (Question, error) {
	b := NewBuilder()
	if err := b.SetStatement(statement); err != nil {
		return Question{}, err
	}
	for _, choice := range choices {
		if err := b.AddChoice(choice); err != nil {
			return Question{}, err
		}
	}
	if err := b.SetAnswerIndex(answerIndex); err != nil {
		return Question{}, err
	}
	return b.Build()
}
