package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ninequiz/internal/runner"
	"ninequiz/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config and the files it references.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.addf("version", "unsupported version %d", cfg.Version)
	}

	if baseDir == "" {
		baseDir = "."
	}
	validateQuestionsFile(cfg.QuestionsFile, baseDir, collector)

	if cfg.ResultsFile != "" && cfg.ResultsDir != "" {
		collector.add("results_dir", "cannot be combined with results_file")
	}

	switch runner.InvalidInputPolicy(cfg.Input.OnInvalid) {
	case runner.InvalidReprompt, runner.InvalidAbort:
	default:
		collector.addf("input.on_invalid", "unsupported policy %q (expected %s|%s)", cfg.Input.OnInvalid, runner.InvalidReprompt, runner.InvalidAbort)
	}
	if cfg.Input.MaxAttempts < 0 {
		collector.add("input.max_attempts", "must be >= 0")
	}
	if cfg.Input.MaxAttempts > 0 && runner.InvalidInputPolicy(cfg.Input.OnInvalid) == runner.InvalidAbort {
		collector.add("input.max_attempts", "only applies to on_invalid: reprompt")
	}

	if !slices.Contains(UIModes(), cfg.UI.Mode) {
		collector.addf("ui.mode", "unsupported mode %q (expected %s)", cfg.UI.Mode, strings.Join(UIModes(), "|"))
	}

	return collector.result()
}

func validateQuestionsFile(path, baseDir string, collector *issueCollector) {
	if strings.TrimSpace(path) == "" {
		collector.add("questions_file", "is required")
		return
	}
	resolved := ResolvePath(baseDir, path)
	info, err := os.Stat(resolved)
	if err != nil {
		collector.addf("questions_file", "file not found at %q", path)
		return
	}
	if info.IsDir() {
		collector.addf("questions_file", "path %q is a directory", path)
	}
}

// ResolvePath joins a relative path onto baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
