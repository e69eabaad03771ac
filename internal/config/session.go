package config

import (
	"ninequiz/internal/runner"
	"ninequiz/internal/session"
	"ninequiz/internal/spec"
)

// SessionData returns default templates with the config's message overrides applied.
func SessionData(cfg spec.Config) *session.Data {
	data := session.Default()
	messages := cfg.Messages
	apply(&data.StartMessage, messages.StartMessage)
	apply(&data.QuestionNumberText, messages.QuestionNumberText)
	apply(&data.QuestionChoiceNumberText, messages.QuestionChoiceNumberText)
	apply(&data.CorrectMessage, messages.CorrectMessage)
	apply(&data.IncorrectMessage, messages.IncorrectMessage)
	apply(&data.SimpleCorrectMessage, messages.SimpleCorrectMessage)
	apply(&data.SimpleIncorrectMessage, messages.SimpleIncorrectMessage)
	return data
}

func apply(target *string, override *string) {
	if override != nil {
		*target = *override
	}
}

// RunnerOptions maps the input section onto runner options.
func RunnerOptions(cfg spec.Config) runner.Options {
	return runner.Options{
		OnInvalid:           runner.InvalidInputPolicy(cfg.Input.OnInvalid),
		MaxAttempts:         cfg.Input.MaxAttempts,
		InvalidInputMessage: cfg.Input.InvalidMessage,
	}
}
