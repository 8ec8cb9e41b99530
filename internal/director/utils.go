package director

import "path/filepath"

const (
	PromptFile       = "generation_prompt.txt"
	MetadataFile     = "metadata.json"
	InstructionsFile = "README.md"
)

// Artifacts holds the paths of the files produced for one run
type Artifacts struct {
	Prompt       string
	Metadata     string
	Instructions string
}

// ArtifactPaths places the three output files inside outputDir
func ArtifactPaths(outputDir string) Artifacts {
	return Artifacts{
		Prompt:       filepath.Join(outputDir, PromptFile),
		Metadata:     filepath.Join(outputDir, MetadataFile),
		Instructions: filepath.Join(outputDir, InstructionsFile),
	}
}

// All returns the artifact paths in write order
func (a Artifacts) All() []string {
	return []string{a.Prompt, a.Metadata, a.Instructions}
}
