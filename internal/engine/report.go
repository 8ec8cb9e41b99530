package engine

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/ivlev/lana/internal/director"
)

const bannerTitle = "LANA - Visual Motion Video Generator"

var rule = strings.Repeat("=", 80)

func (p *Project) printHeader(promptLen int, outputDir string) {
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, bannerTitle)
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out, "\nGenerating video from prompt...")
	fmt.Fprintf(p.Out, "\nPrompt length: %d characters\n", promptLen)
	fmt.Fprintf(p.Out, "Output directory: %s\n", outputDir)
}

func (p *Project) printSummary(meta *director.Metadata) {
	fmt.Fprintln(p.Out, "\n"+rule)
	fmt.Fprintln(p.Out, "✓ Video generation preparation complete!")
	fmt.Fprintln(p.Out, rule)
	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, renderSpecs(meta, isTerminal(p.Out)))
	fmt.Fprintf(p.Out, "\nOutput files created in: %s/\n", meta.OutputPath)
	fmt.Fprintln(p.Out, "\nNext steps:")
	fmt.Fprintf(p.Out, "1. Review the generated prompt in %s\n", director.PromptFile)
	fmt.Fprintf(p.Out, "2. Choose a video generation platform (see %s)\n", director.InstructionsFile)
	fmt.Fprintln(p.Out, "3. Use the prompt to generate your cinematic video")
	fmt.Fprintln(p.Out, "\n"+rule)
}

// renderSpecs draws the technical specs as a two-column table.
func renderSpecs(meta *director.Metadata, pretty bool) string {
	s := meta.TechnicalSpecs

	tw := table.NewWriter()
	if pretty {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"Spec", "Value"})
	tw.AppendRows([]table.Row{
		{"Resolution", s.Resolution},
		{"Frame Rate", strconv.Itoa(s.FPS) + " fps"},
		{"Duration", s.Duration + " seconds"},
		{"Format", s.Format},
		{"Codec", s.Codec},
		{"Status", meta.Status},
	})
	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
