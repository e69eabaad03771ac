package live

import (
	"strconv"

	"ninequiz/internal/question"
	"ninequiz/internal/runner"
)

// maxTypedDigits bounds a typed selection so it always parses as an int.
const maxTypedDigits = 9

// Reduce applies an action to the quiz state.
func Reduce(state State, questions question.Set, action Action) State {
	if state.Aborted {
		return state
	}
	if action.Kind == ActionQuit {
		if state.Stage != StageFinished {
			state.Aborted = true
		}
		return state
	}
	switch state.Stage {
	case StageAsking:
		return reduceAsking(state, questions, action)
	case StageJudged:
		if action.Kind == ActionConfirm {
			return advance(state, questions)
		}
	}
	return state
}

func reduceAsking(state State, questions question.Set, action Action) State {
	current := questions.At(state.Index)
	switch action.Kind {
	case ActionUp:
		state.Typed = ""
		if state.Cursor > 0 {
			state.Cursor--
		}
	case ActionDown:
		state.Typed = ""
		if state.Cursor < current.ChoiceCount()-1 {
			state.Cursor++
		}
	case ActionDigit:
		if action.Digit < '0' || action.Digit > '9' || len(state.Typed) >= maxTypedDigits {
			return state
		}
		state.Typed += string(action.Digit)
		if number, err := strconv.Atoi(state.Typed); err == nil && number >= 1 && number <= current.ChoiceCount() {
			state.Cursor = number - 1
		}
	case ActionBackspace:
		if state.Typed != "" {
			state.Typed = state.Typed[:len(state.Typed)-1]
		}
	case ActionConfirm:
		selection := state.Cursor + 1
		if state.Typed != "" {
			number, err := strconv.Atoi(state.Typed)
			if err != nil {
				number = 0
			}
			selection = number
		}
		outcome := runner.Judge(current, selection)
		state.Result.Selections = append(state.Result.Selections, selection)
		state.Result.Outcomes = append(state.Result.Outcomes, outcome)
		state.Typed = ""
		state.Stage = StageJudged
	}
	return state
}

func advance(state State, questions question.Set) State {
	if state.Index+1 >= questions.Len() {
		state.Stage = StageFinished
		return state
	}
	state.Index++
	state.Cursor = 0
	state.Stage = StageAsking
	return state
}

// LastOutcome returns the most recent judgement.
func (s State) LastOutcome() (runner.Outcome, bool) {
	if len(s.Result.Outcomes) == 0 {
		return runner.Incorrect, false
	}
	return s.Result.Outcomes[len(s.Result.Outcomes)-1], true
}
