package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/ivlev/lana/internal/config"
	"github.com/ivlev/lana/internal/director"
	"github.com/ivlev/lana/internal/system"
)

// ErrEmptyScene is returned by Run when there is nothing to expand.
var ErrEmptyScene = errors.New("scene description is empty")

// Project prepares the artifacts for a single scene.
type Project struct {
	Config   *config.Config
	Director *director.Director
	Out      io.Writer
}

func NewProject(cfg *config.Config, d *director.Director, out io.Writer) *Project {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if d == nil {
		d = director.NewDirector()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Project{
		Config:   cfg,
		Director: d,
		Out:      out,
	}
}

// Run writes generation_prompt.txt, metadata.json and README.md into
// outputDir, in that order. An empty outputDir falls back to the
// configured directory. Files written before a failure are left on disk.
func (p *Project) Run(scene, outputDir string) (*director.Metadata, error) {
	if scene == "" {
		return nil, ErrEmptyScene
	}
	if outputDir == "" {
		outputDir = p.Config.OutputDir
	}
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	p.printHeader(utf8.RuneCountInString(scene), outputDir)

	if err := system.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	prompt, err := p.Director.BuildPrompt(scene)
	if err != nil {
		return nil, err
	}

	paths := director.ArtifactPaths(outputDir)

	if err := director.WritePrompt(prompt, paths.Prompt); err != nil {
		return nil, fmt.Errorf("write prompt: %w", err)
	}
	fmt.Fprintf(p.Out, "\n✓ Generated prompt saved to: %s\n", paths.Prompt)

	meta := p.Director.BuildMetadata(scene, prompt, outputDir)
	if err := director.WriteMetadata(meta, paths.Metadata); err != nil {
		return nil, fmt.Errorf("write metadata: %w", err)
	}
	fmt.Fprintf(p.Out, "✓ Metadata saved to: %s\n", paths.Metadata)

	if err := director.WriteInstructions(paths.Instructions); err != nil {
		return nil, fmt.Errorf("write instructions: %w", err)
	}
	fmt.Fprintf(p.Out, "✓ Instructions saved to: %s\n", paths.Instructions)

	p.printSummary(meta)

	return meta, nil
}
