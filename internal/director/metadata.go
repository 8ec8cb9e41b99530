package director

import "github.com/ivlev/lana/internal/video"

// StatusReady marks a prompt that is ready to be submitted to a generation service.
const StatusReady = "ready_for_generation"

// Metadata is the per-run record written to metadata.json.
// Field order here is the key order in the file.
type Metadata struct {
	OriginalPrompt  string      `json:"original_prompt"`
	OptimizedPrompt string      `json:"optimized_prompt"`
	OutputPath      string      `json:"output_path"`
	Status          string      `json:"status"`
	TechnicalSpecs  video.Specs `json:"technical_specs"`
	Notes           []string    `json:"notes"`
}

// DefaultNotes lists the services the prompt is intended for.
func DefaultNotes() []string {
	return []string{
		"This system prepares video generation prompts for AI video generation services",
		"To generate the actual video, use services like:",
		"  - OpenAI's Sora (when available)",
		"  - Runway Gen-2",
		"  - Stability AI's Stable Video Diffusion",
		"  - Pika Labs",
		"  - Other AI video generation platforms",
	}
}
