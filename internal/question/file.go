package question

// File defines the questions file schema loaded from JSON or YAML.
type File struct {
	Version   int         `json:"version" yaml:"version"`
	Questions []FileEntry `json:"questions" yaml:"questions"`
}

// FileEntry is a single question as written in a questions file. Pointer fields
// distinguish absent or null values from empty ones.
type FileEntry struct {
	Statement *string   `json:"statement" yaml:"statement"`
	Choices   []*string `json:"choices" yaml:"choices"`
	Answer    *int      `json:"answer" yaml:"answer"`
}
