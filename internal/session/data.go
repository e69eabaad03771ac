// Package session holds the user-facing message templates of a quiz run.
package session

// Default message templates.
const (
	DefaultStartMessage             = "NineQuiz スタート!"
	DefaultQuestionNumberText       = "問{num}:"
	DefaultQuestionChoiceNumberText = "{num}."
	DefaultCorrectMessage           = "正解！"
	DefaultIncorrectMessage         = "不正解･･････。"
	DefaultSimpleCorrectMessage     = "○"
	DefaultSimpleIncorrectMessage   = "☓"
)

// Data is the set of message templates shown during a quiz. Each field is
// independently settable; the runner reads it on every use, so changes made by
// the caller between runs are picked up.
type Data struct {
	StartMessage             string
	QuestionNumberText       string
	QuestionChoiceNumberText string
	CorrectMessage           string
	IncorrectMessage         string
	SimpleCorrectMessage     string
	SimpleIncorrectMessage   string
}

// Default returns a Data populated with the default templates.
func Default() *Data {
	return &Data{
		StartMessage:             DefaultStartMessage,
		QuestionNumberText:       DefaultQuestionNumberText,
		QuestionChoiceNumberText: DefaultQuestionChoiceNumberText,
		CorrectMessage:           DefaultCorrectMessage,
		IncorrectMessage:         DefaultIncorrectMessage,
		SimpleCorrectMessage:     DefaultSimpleCorrectMessage,
		SimpleIncorrectMessage:   DefaultSimpleIncorrectMessage,
	}
}

// QuestionNumber renders the numbering prefix of a 1-based question number.
func (d *Data) QuestionNumber(number int) string {
	return Format(number, d.QuestionNumberText)
}

// ChoiceNumber renders the numbering prefix of a 1-based choice number.
func (d *Data) ChoiceNumber(number int) string {
	return Format(number, d.QuestionChoiceNumberText)
}
