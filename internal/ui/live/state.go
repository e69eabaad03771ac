package live

import "ninequiz/internal/runner"

// Stage is the position of the live quiz within the current question.
type Stage int

const (
	// StageAsking waits for a selection.
	StageAsking Stage = iota
	// StageJudged shows the judgement of the last answer.
	StageJudged
	// StageFinished shows the results table.
	StageFinished
)

// State captures the live quiz progress.
type State struct {
	// Index is the 0-based position of the current question.
	Index int
	// Cursor is the 0-based highlighted choice.
	Cursor int
	// Typed holds digits entered for a direct selection.
	Typed   string
	Stage   Stage
	Result  runner.Result
	Aborted bool
}

// ActionKind identifies a user action.
type ActionKind int

const (
	ActionUp ActionKind = iota
	ActionDown
	ActionDigit
	ActionBackspace
	ActionConfirm
	ActionQuit
)

// Action is a single user input mapped from a key press.
type Action struct {
	Kind  ActionKind
	Digit rune
}
