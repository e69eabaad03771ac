package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"ninequiz/internal/config"
)

// uiModeDecision records whether the quiz runs in the live UI and any notice for stderr.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the quiz front end. mode is the --ui flag or, when the
// flag is unset, the normalized ui.mode from config. --verbose always selects
// plain output so log lines stay readable.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	switch normalized {
	case config.UIModeAuto, config.UIModeLive, config.UIModePlain:
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected %s)", mode, strings.Join(config.UIModes(), "|"))
	}
	if verbose || normalized == config.UIModePlain {
		return uiModeDecision{}, nil
	}
	tty := isTerminal(stdout)
	if normalized == config.UIModeLive && !tty {
		return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; using plain output."}, nil
	}
	return uiModeDecision{useLive: tty}, nil
}

func defaultIsTerminal(stdout io.Writer) bool {
	switch out := stdout.(type) {
	case *os.File:
		return term.IsTerminal(int(out.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(out.Fd()))
	default:
		return false
	}
}
