package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ninequiz/internal/question"
)

// QuestionSpec describes a question for test fixtures.
type QuestionSpec struct {
	Statement string
	Answer    int
	Choices   []string
}

// QuestionSet builds a question set or fails the test.
func QuestionSet(t testing.TB, specs ...QuestionSpec) question.Set {
	t.Helper()
	questions := make([]question.Question, 0, len(specs))
	for _, spec := range specs {
		q, err := question.New(spec.Statement, spec.Answer, spec.Choices...)
		if err != nil {
			t.Fatalf("build question %q: %v", spec.Statement, err)
		}
		questions = append(questions, q)
	}
	set, err := question.NewSet(questions...)
	if err != nil {
		t.Fatalf("build question set: %v", err)
	}
	return set
}

// ArithmeticSet returns a two-question set with answers 2 and 1.
func ArithmeticSet(t testing.TB) question.Set {
	t.Helper()
	return QuestionSet(t,
		QuestionSpec{Statement: "2+2=?", Answer: 2, Choices: []string{"3", "4", "5"}},
		QuestionSpec{Statement: "3-2=?", Answer: 1, Choices: []string{"1", "2"}},
	)
}

// CloseCounter wraps a reader and counts Close calls.
type CloseCounter struct {
	io.Reader
	Closes int
}

// NewCloseCounter returns a counter over the given lines, one per line.
func NewCloseCounter(lines ...string) *CloseCounter {
	body := ""
	if len(lines) > 0 {
		body = strings.Join(lines, "\n") + "\n"
	}
	return &CloseCounter{Reader: strings.NewReader(body)}
}

// Close records the call.
func (c *CloseCounter) Close() error {
	c.Closes++
	return nil
}

// WriteFile writes a fixture file under dir, creating parent directories.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
