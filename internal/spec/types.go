package spec

// Config is the .ninequiz/config.yml schema.
type Config struct {
	Version       int            `yaml:"version"`
	QuestionsFile string         `yaml:"questions_file"`
	ResultsFile   string         `yaml:"results_file"`
	ResultsDir    string         `yaml:"results_dir"`
	Messages      MessagesConfig `yaml:"messages"`
	Input         InputConfig    `yaml:"input"`
	UI            UIConfig       `yaml:"ui"`
}

// MessagesConfig overrides session templates. Absent fields keep their defaults.
type MessagesConfig struct {
	StartMessage             *string `yaml:"start_message"`
	QuestionNumberText       *string `yaml:"question_number_text"`
	QuestionChoiceNumberText *string `yaml:"question_choice_number_text"`
	CorrectMessage           *string `yaml:"correct_message"`
	IncorrectMessage         *string `yaml:"incorrect_message"`
	SimpleCorrectMessage     *string `yaml:"simple_correct_message"`
	SimpleIncorrectMessage   *string `yaml:"simple_incorrect_message"`
}

type InputConfig struct {
	OnInvalid      string `yaml:"on_invalid"`
	MaxAttempts    int    `yaml:"max_attempts"`
	InvalidMessage string `yaml:"invalid_message"`
}

type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}
