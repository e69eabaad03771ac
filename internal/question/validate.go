package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a questions file.
type Issue struct {
	Field   string
	Message string
	Err     error
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("questions file validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap exposes the error kinds of the collected issues to errors.Is.
func (err *ValidationError) Unwrap() []error {
	if err == nil {
		return nil
	}
	var errs []error
	for _, issue := range err.Issues {
		if issue.Err != nil {
			errs = append(errs, issue.Err)
		}
	}
	return errs
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) addErr(field string, err error) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: err.Error(), Err: err})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// BuildSet validates a parsed questions file and builds its question set.
func BuildSet(file File) (Set, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	questions := make([]Question, 0, len(file.Questions))
	for i, entry := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q, ok := buildEntry(prefix, entry, collector)
		if ok {
			questions = append(questions, q)
		}
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return NewSet(questions...)
}

// buildEntry feeds one file entry through a Builder. The first failure of the
// entry is recorded and the entry is skipped.
func buildEntry(prefix string, entry FileEntry, collector *issueCollector) (Question, bool) {
	builder := NewBuilder()

	if entry.Statement == nil {
		collector.addErr(prefix+".statement", fmt.Errorf("%w: statement is required", ErrNullInput))
		return Question{}, false
	}
	if err := builder.SetStatement(normalizeText(*entry.Statement)); err != nil {
		collector.addErr(prefix+".statement", err)
		return Question{}, false
	}

	if len(entry.Choices) == 0 {
		collector.addErr(prefix+".choices", fmt.Errorf("%w: must include at least one entry", ErrInvalidState))
		return Question{}, false
	}
	for choiceIndex, choice := range entry.Choices {
		field := fmt.Sprintf("%s.choices[%d]", prefix, choiceIndex)
		if choice == nil {
			collector.addErr(field, fmt.Errorf("%w: choice is null", ErrNullInput))
			return Question{}, false
		}
		if err := builder.AddChoice(normalizeText(*choice)); err != nil {
			collector.addErr(field, err)
			return Question{}, false
		}
	}

	if entry.Answer == nil {
		collector.addErr(prefix+".answer", fmt.Errorf("%w: answer is required", ErrNullInput))
		return Question{}, false
	}
	if err := builder.SetAnswerIndex(*entry.Answer); err != nil {
		collector.addErr(prefix+".answer", err)
		return Question{}, false
	}

	q, err := builder.Build()
	if err != nil {
		collector.addErr(prefix+".answer", err)
		return Question{}, false
	}
	return q, true
}
