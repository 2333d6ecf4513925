package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer turns a topic's raw content into terminal output. ext is the
// topic file's extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as they are stored
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Anything else, and
// any content glamour rejects, is printed unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty", ...).
	// Empty picks one from the terminal, or "notty" when NO_COLOR is set.
	Style string
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var opts []glamour.TermRendererOption
	switch {
	case r.Style != "":
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	case os.Getenv("NO_COLOR") != "":
		opts = append(opts, glamour.WithStandardStyle("notty"))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
