// Package style defines dotf's terminal styling. Named lipgloss styles are
// loaded from an embedded styles.yaml; status markers use pterm colors.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color as written in styles.yaml
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style as written in styles.yaml. Colors refer to entries
// in the colors table by name.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is the parsed styles.yaml
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry map[string]lipgloss.Style

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		registry = map[string]lipgloss.Style{}
	}
}

// LoadStylesFromData replaces the style registry with the styles in data.
func LoadStylesFromData(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	loaded := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s, err := buildStyle(def, colors)
		if err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
		loaded[name] = s
	}

	registry = loaded
	return nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	s := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		c, ok := colors[def.Foreground]
		if !ok {
			return s, fmt.Errorf("unknown color %q", def.Foreground)
		}
		s = s.Foreground(c)
	}
	if def.Background != "" {
		c, ok := colors[def.Background]
		if !ok {
			return s, fmt.Errorf("unknown color %q", def.Background)
		}
		s = s.Background(c)
	}
	return s, nil
}

// Get returns the named style, or an unstyled one if it is not defined.
func Get(name string) lipgloss.Style {
	if s, ok := registry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text.
func Render(name, text string) string {
	return Get(name).Render(text)
}
