package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ninequiz/internal/config"
	"ninequiz/internal/question"
	"ninequiz/internal/spec"
)

// errQuestionsRequired is returned when neither a config file nor --questions names a quiz.
var errQuestionsRequired = errors.New("no config found; pass --questions <path> or run \"ninequiz init\"")

// quizSetup is the resolved config and question set for a command.
type quizSetup struct {
	cfg           spec.Config
	root          string
	questionsPath string
	questions     question.Set
}

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// loadQuizSetup loads the config (or defaults when none is found and a
// questions override is given) and the question set it points at.
func loadQuizSetup(specPath, questionsOverride string) (quizSetup, error) {
	var setup quizSetup
	override := ""
	if trimmed := strings.TrimSpace(questionsOverride); trimmed != "" {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			return quizSetup{}, fmt.Errorf("resolve questions path: %w", err)
		}
		override = abs
	}

	resolvedSpec, err := resolveSpecPath(specPath)
	switch {
	case err == nil:
		cfg, loadErr := config.LoadWithQuestions(resolvedSpec, override)
		if loadErr != nil {
			return quizSetup{}, loadErr
		}
		setup.cfg = cfg
		setup.root = config.RootFromConfigPath(resolvedSpec)
	case errors.Is(err, config.ErrConfigNotFound) && override != "":
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return quizSetup{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		setup.cfg = config.Default()
		setup.cfg.QuestionsFile = override
		setup.root = wd
	case errors.Is(err, config.ErrConfigNotFound):
		return quizSetup{}, errQuestionsRequired
	default:
		return quizSetup{}, err
	}
	setup.questionsPath = config.ResolvePath(setup.root, setup.cfg.QuestionsFile)

	set, err := question.LoadFile(setup.questionsPath)
	if err != nil {
		return quizSetup{}, err
	}
	setup.questions = set
	return setup, nil
}
