package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
questions_file: "questions.yml"
# results_dir: "results"

messages:
  start_message: "NineQuiz スタート!"
  question_number_text: "問{num}:"
  question_choice_number_text: "{num}."
  correct_message: "正解！"
  incorrect_message: "不正解･･････。"
  simple_correct_message: "○"
  simple_incorrect_message: "☓"

input:
  on_invalid: reprompt
  max_attempts: 0

ui:
  mode: auto
  no_color: false
`

const defaultQuestions = `version: 1
questions:
  - statement: "Javaの型付けは何ですか？"
    choices:
      - "静的型付け"
      - "動的型付け"
      - "性的型付け"
    answer: 1
  - statement: "int型はどの種類の型ですか？"
    choices:
      - "参照型"
      - "基本型"
      - "金剛型"
    answer: 2
`

// ScaffoldPaths lists the files written by Scaffold.
type ScaffoldPaths struct {
	ConfigPath    string
	QuestionsPath string
}

// Scaffold writes a starter config and questions file under root. Existing
// files are never overwritten.
func Scaffold(root string) (ScaffoldPaths, error) {
	if root == "" {
		return ScaffoldPaths{}, fmt.Errorf("root directory is required")
	}
	paths := ScaffoldPaths{
		ConfigPath:    ConfigPath(root),
		QuestionsPath: filepath.Join(root, DefaultQuestionsFile),
	}
	for _, path := range []string{paths.ConfigPath, paths.QuestionsPath} {
		if err := ensureAbsent(path); err != nil {
			return ScaffoldPaths{}, err
		}
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return ScaffoldPaths{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(paths.ConfigPath, []byte(defaultConfig), 0o644); err != nil {
		return ScaffoldPaths{}, fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(paths.QuestionsPath, []byte(defaultQuestions), 0o644); err != nil {
		return ScaffoldPaths{}, fmt.Errorf("write questions file: %w", err)
	}
	return paths, nil
}

func ensureAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("path %q is a directory", path)
		}
		return fmt.Errorf("file already exists at %q", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	return nil
}
