package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"ninequiz/internal/testutil"
)

const arithmeticQuestions = `version: 1
questions:
  - statement: "2+2=?"
    choices: ["3", "4", "5"]
    answer: 2
  - statement: "3-2=?"
    choices: ["1", "2"]
    answer: 1
`

// writeProject creates a config and questions file and returns the config path.
func writeProject(t *testing.T, dir, extraConfig string) string {
	t.Helper()
	testutil.WriteFile(t, dir, "questions.yml", arithmeticQuestions)
	return testutil.WriteFile(t, dir, filepath.Join(".ninequiz", "config.yml"),
		"version: 1\nquestions_file: questions.yml\n"+extraConfig)
}

// withRunInput feeds answer lines to the run command and forces plain output.
func withRunInput(t *testing.T, lines ...string) {
	t.Helper()
	originalInput := runInput
	originalTerminal := isTerminal
	originalRunID := newRunID
	t.Cleanup(func() {
		runInput = originalInput
		isTerminal = originalTerminal
		newRunID = originalRunID
	})
	body := ""
	if len(lines) > 0 {
		body = strings.Join(lines, "\n") + "\n"
	}
	runInput = strings.NewReader(body)
	isTerminal = func(io.Writer) bool { return false }
	newRunID = func() (string, error) { return "run-test", nil }
}

func writeQuestions(t *testing.T, dir, body string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, "questions.yml", body)
}
