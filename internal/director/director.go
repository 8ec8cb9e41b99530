package director

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ivlev/lana/internal/video"
)

//go:embed prompt.tmpl
var promptTemplate string

var promptTmpl = template.Must(template.New("prompt").Parse(promptTemplate))

// Director expands scene descriptions into generation prompts and
// assembles the metadata record that accompanies them.
type Director struct {
	Specs video.Specs
	Notes []string
}

// NewDirector creates a Director with the default technical specs and notes.
func NewDirector() *Director {
	return &Director{
		Specs: video.DefaultSpecs(),
		Notes: DefaultNotes(),
	}
}

// promptData is the template context for prompt.tmpl.
type promptData struct {
	Scene string
	Specs video.Specs
}

// BuildPrompt substitutes the scene description into the cinematic template.
// The description is copied verbatim; the result depends only on the
// scene and the Director's specs.
func (d *Director) BuildPrompt(scene string) (string, error) {
	var sb strings.Builder
	if err := promptTmpl.Execute(&sb, promptData{Scene: scene, Specs: d.Specs}); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

// BuildMetadata assembles the run metadata for an already generated prompt.
func (d *Director) BuildMetadata(original, prompt, outputDir string) *Metadata {
	notes := make([]string, len(d.Notes))
	copy(notes, d.Notes)

	return &Metadata{
		OriginalPrompt:  original,
		OptimizedPrompt: prompt,
		OutputPath:      outputDir,
		Status:          StatusReady,
		TechnicalSpecs:  d.Specs,
		Notes:           notes,
	}
}
