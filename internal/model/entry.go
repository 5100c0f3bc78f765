package model

// Entry is one image in the catalog. ID doubles as the output file name.
type Entry struct {
	ID     string `yaml:"id"`
	Prompt string `yaml:"prompt"`
}
