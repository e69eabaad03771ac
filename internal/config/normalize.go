package config

import (
	"strings"

	"ninequiz/internal/runner"
	"ninequiz/internal/spec"
)

// UI modes accepted by ui.mode.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// UIModes lists the accepted ui.mode values.
func UIModes() []string {
	return []string{UIModeAuto, UIModeLive, UIModePlain}
}

// Normalize trims values and fills defaults.
func Normalize(cfg *spec.Config) {
	cfg.QuestionsFile = strings.TrimSpace(cfg.QuestionsFile)
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = DefaultQuestionsFile
	}
	cfg.ResultsFile = strings.TrimSpace(cfg.ResultsFile)
	cfg.ResultsDir = strings.TrimSpace(cfg.ResultsDir)

	cfg.Input.OnInvalid = strings.ToLower(strings.TrimSpace(cfg.Input.OnInvalid))
	if cfg.Input.OnInvalid == "" {
		cfg.Input.OnInvalid = string(runner.InvalidReprompt)
	}
	if cfg.Input.InvalidMessage == "" {
		cfg.Input.InvalidMessage = runner.DefaultInvalidInputMessage
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
}
