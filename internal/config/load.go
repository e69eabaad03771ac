package config

import (
	"fmt"
	"os"

	"ninequiz/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (spec.Config, error) {
	return LoadWithQuestions(path, "")
}

// LoadWithQuestions is Load with questions_file replaced by questionsFile
// before validation. An empty questionsFile keeps the configured value.
func LoadWithQuestions(path, questionsFile string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, err
	}
	if questionsFile != "" {
		cfg.QuestionsFile = questionsFile
	}
	Normalize(&cfg)
	if err := Validate(&cfg, RootFromConfigPath(path)); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Default returns the normalized config used when no config file exists.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
