package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestVerboseObserverPlainOutput verifies verbose lines without styling.
func TestVerboseObserverPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	observer := NewVerboseObserver(&buf, false)
	observer.OnRunStart(2)
	observer.OnInvalidInput(1, " x ", ErrFormat)
	observer.OnRunEnd(Result{Outcomes: []Outcome{Correct, Incorrect}}, nil)
	observer.OnRunEnd(Result{}, errors.New("boom"))

	output := buf.String()
	if strings.Contains(output, "\x1b[") {
		t.Fatalf("expected no ANSI codes for a buffer, got %q", output)
	}
	for _, want := range []string{
		"[verbose] run start questions=2",
		`[verbose] question=1 rejected input "x"`,
		"[verbose] run end correct=1 incorrect=1",
		"[verbose] run aborted after 0 answers: boom",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in %q", want, output)
		}
	}
}

// TestVerbosePaletteNoColor verifies noColor disables styling.
func TestVerbosePaletteNoColor(t *testing.T) {
	palette := paletteFor(&bytes.Buffer{}, true)
	if palette.apply(styleError, "x") != "x" {
		t.Fatalf("expected plain text")
	}
	enabled := verbosePalette{enabled: true}
	if !strings.HasPrefix(enabled.apply(styleCorrect, "x"), ansiBold+ansiGreen) {
		t.Fatalf("expected green styling")
	}
}
