package ui

import (
	"github.com/charmbracelet/glamour"
)

// ReadmeRenderer renders a project readme for terminal display using
// glamour's markdown renderer
type ReadmeRenderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a custom style
	Width int    // terminal width (0 = auto-detect)
}

// NewReadmeRenderer creates a renderer with terminal auto-detection
func NewReadmeRenderer() *ReadmeRenderer {
	return &ReadmeRenderer{
		Style: "auto",
		Width: 0,
	}
}

// Render converts markdown content to terminal output. On any rendering
// failure the raw content is returned unchanged so the readme is never
// swallowed.
func (r *ReadmeRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
