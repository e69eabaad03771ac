package question

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestLoadFileYAML verifies YAML questions files load and trim text.
func TestLoadFileYAML(t *testing.T) {
	path := writeQuestionsFile(t, "questions.yml", `version: 1
questions:
  - statement: "  What is 2+2? "
    choices: [" 3 ", "4", "5"]
    answer: 2
  - statement: "Pick b"
    choices: ["a", "b"]
    answer: 2
`)
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 questions, got %d", set.Len())
	}
	q := set.At(0)
	if q.Statement() != "What is 2+2?" {
		t.Fatalf("expected trimmed statement, got %q", q.Statement())
	}
	if first, _ := q.Choice(1); first != "3" {
		t.Fatalf("expected trimmed choice, got %q", first)
	}
	if q.Answer() != "4" {
		t.Fatalf("expected answer 4, got %q", q.Answer())
	}
}

// TestLoadFileJSON verifies JSON questions files are parsed.
func TestLoadFileJSON(t *testing.T) {
	path := writeQuestionsFile(t, "questions.json", `{
  "version": 1,
  "questions": [
    {"statement": "Which color?", "choices": ["red", "blue"], "answer": 1}
  ]
}`)
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if set.Len() != 1 || set.At(0).Answer() != "red" {
		t.Fatalf("unexpected set: %+v", set.All())
	}
}

// TestLoadFileRejectsUnknownFields verifies strict decoding.
func TestLoadFileRejectsUnknownFields(t *testing.T) {
	path := writeQuestionsFile(t, "questions.yml", `version: 1
questions:
  - statement: "q"
    choices: ["a"]
    answer: 1
    hint: "nope"
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

// TestLoadFileValidationIssues verifies every broken entry is reported with its field.
func TestLoadFileValidationIssues(t *testing.T) {
	path := writeQuestionsFile(t, "questions.yml", `version: 1
questions:
  - choices: ["a"]
    answer: 1
  - statement: "null choice"
    choices: ["a", null]
    answer: 1
  - statement: "too far"
    choices: ["a", "b"]
    answer: 4
  - statement: "collapsed duplicates"
    choices: ["a", "a"]
    answer: 2
  - statement: ""
    choices: ["a"]
    answer: 1
`)
	_, err := LoadFile(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{
		"questions[0].statement",
		"questions[1].choices[1]",
		"questions[2].answer",
		"questions[3].answer",
		"questions[4].statement",
	} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, validationErr.Issues)
		}
	}
	if !errors.Is(err, ErrNullInput) {
		t.Fatalf("expected null input kind in %v", err)
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range kind in %v", err)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state kind in %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument kind in %v", err)
	}
	if !strings.Contains(err.Error(), "questions file validation failed") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

// TestLoadFileRequiresVersionAndQuestions verifies top-level requirements.
func TestLoadFileRequiresVersionAndQuestions(t *testing.T) {
	path := writeQuestionsFile(t, "questions.yml", "questions: []\n")
	_, err := LoadFile(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected version and questions issues, got %+v", validationErr.Issues)
	}
}

// TestLoadFileMissing verifies read errors are wrapped.
func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil || !strings.Contains(err.Error(), "read questions file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func writeQuestionsFile(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write questions file: %v", err)
	}
	return path
}
