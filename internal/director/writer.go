package director

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
)

//go:embed instructions.md
var instructions string

// Instructions returns the README content written next to every prompt.
func Instructions() string {
	return instructions
}

// WritePrompt writes the generated prompt as plain text
func WritePrompt(prompt, path string) error {
	return os.WriteFile(path, []byte(prompt), 0644)
}

// WriteMetadata writes metadata as UTF-8 JSON with 2-space indentation
func WriteMetadata(meta *Metadata, path string) error {
	data, err := EncodeMetadata(meta)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EncodeMetadata renders metadata exactly as WriteMetadata stores it.
// HTML characters in prompts are kept as-is.
func EncodeMetadata(meta *Metadata) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteInstructions writes the fixed instructions document
func WriteInstructions(path string) error {
	return os.WriteFile(path, []byte(instructions), 0644)
}

// ReadMetadata reads a metadata file written by WriteMetadata
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
