package video

import "fmt"

// Specs описывает целевые параметры ролика, которые передаются
// внешнему сервису генерации вместе с промптом.
type Specs struct {
	Width       int    `json:"-"`
	Height      int    `json:"-"`
	Resolution  string `json:"resolution"`
	FPS         int    `json:"fps"`
	SourceFPS   int    `json:"-"`
	MinDuration int    `json:"-"`
	MaxDuration int    `json:"-"`
	Duration    string `json:"duration_seconds"`
	Format      string `json:"format"`
	Codec       string `json:"codec"`
}

// DefaultSpecs возвращает Full HD, 30 fps, 30-60 секунд, MP4/H.264.
func DefaultSpecs() Specs {
	return NewSpecs(1920, 1080, 30, 120, 30, 60, "MP4", "H.264")
}

func NewSpecs(width, height, fps, sourceFPS, minDur, maxDur int, format, codec string) Specs {
	return Specs{
		Width:       width,
		Height:      height,
		Resolution:  fmt.Sprintf("%dx%d", width, height),
		FPS:         fps,
		SourceFPS:   sourceFPS,
		MinDuration: minDur,
		MaxDuration: maxDur,
		Duration:    fmt.Sprintf("%d-%d", minDur, maxDur),
		Format:      format,
		Codec:       codec,
	}
}

// Label возвращает человекочитаемое имя разрешения.
func (s Specs) Label() string {
	switch {
	case s.Width == 3840 && s.Height == 2160:
		return "4K UHD"
	case s.Width == 1920 && s.Height == 1080:
		return "Full HD"
	case s.Width == 1280 && s.Height == 720:
		return "HD"
	case s.Width == 1080 && s.Height == 1920:
		return "Vertical Full HD"
	default:
		return "Custom"
	}
}
