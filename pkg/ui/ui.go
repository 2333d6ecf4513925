// Package ui renders command results as colored terminal output, plain
// text or JSON.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
)

// View is one command result ready for output. Data is what JSON output
// encodes; Plain and Styled are the text renderings, line by line. A view
// without Styled lines uses Plain on terminals too.
type View struct {
	Data   interface{}
	Plain  []string
	Styled []string
}

// Renderer writes views in one output format.
type Renderer interface {
	Render(v View) error
}

// NewRenderer returns the renderer for format. FormatAuto is resolved
// against w with DetectFormat.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(w), w)
	case FormatTerminal:
		return &terminalRenderer{w: w}, nil
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonRenderer{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) Render(v View) error {
	return writeLines(r.w, v.Plain)
}

type terminalRenderer struct {
	w io.Writer
}

func (r *terminalRenderer) Render(v View) error {
	if len(v.Styled) > 0 {
		return writeLines(r.w, v.Styled)
	}
	return writeLines(r.w, v.Plain)
}

type jsonRenderer struct {
	enc *json.Encoder
}

func (r *jsonRenderer) Render(v View) error {
	return r.enc.Encode(v.Data)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
