package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleRun
	styleCorrect
	styleError
)

// VerboseObserver logs run events as [verbose] lines.
type VerboseObserver struct {
	writer  io.Writer
	palette verbosePalette
}

// NewVerboseObserver returns an observer writing to w. Styling is applied only
// when w is a terminal and noColor is false.
func NewVerboseObserver(w io.Writer, noColor bool) *VerboseObserver {
	return &VerboseObserver{writer: w, palette: paletteFor(w, noColor)}
}

// OnRunStart logs the number of questions.
func (v *VerboseObserver) OnRunStart(total int) {
	v.log(styleRun, "run start questions=%d", total)
}

// OnInvalidInput logs a rejected line.
func (v *VerboseObserver) OnInvalidInput(number int, line string, err error) {
	v.log(styleError, "question=%d rejected input %q: %v", number, strings.TrimSpace(line), err)
}

// OnAnswer logs a judged answer.
func (v *VerboseObserver) OnAnswer(event AnswerEvent) {
	style := styleError
	if event.Outcome == Correct {
		style = styleCorrect
	}
	v.log(style, "question=%d selection=%d answer=%d outcome=%s attempts=%d",
		event.Number, event.Selection, event.Question.AnswerIndex(), event.Outcome, event.Attempts)
}

// OnRunEnd logs the final tally.
func (v *VerboseObserver) OnRunEnd(result Result, err error) {
	if err != nil {
		v.log(styleError, "run aborted after %d answers: %v", result.Total(), err)
		return
	}
	v.log(styleRun, "run end correct=%d incorrect=%d", result.Correct(), result.Incorrect())
}

func (v *VerboseObserver) log(style verboseStyle, format string, args ...any) {
	if v == nil || v.writer == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(v.writer, "%s %s\n", v.palette.prefix(verbosePrefix), v.palette.apply(style, line))
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleRun:
		return ansiBold + ansiBlue + text + ansiReset
	case styleCorrect:
		return ansiBold + ansiGreen + text + ansiReset
	case styleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
