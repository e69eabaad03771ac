package config

import (
	"testing"

	"ninequiz/internal/spec"
	"ninequiz/internal/testutil"
)

// validConfig returns a minimal normalized config used by validation tests.
func validConfig() spec.Config {
	cfg := spec.Config{Version: 1, QuestionsFile: "questions.yml"}
	Normalize(&cfg)
	return cfg
}

func writeQuestionsFile(t *testing.T, dir string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, "questions.yml", `version: 1
questions:
  - statement: "What is 1+1?"
    choices: ["1", "2"]
    answer: 2
`)
}

func writeConfigFile(t *testing.T, root, body string) string {
	t.Helper()
	return testutil.WriteFile(t, root, ConfigDirName+"/"+ConfigFileName, body)
}

func strPtr(value string) *string {
	return &value
}
