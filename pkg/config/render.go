package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// fileView mirrors Config in the shape of config.toml.
type fileView struct {
	Root        string   `toml:"root"`
	DefaultKey  string   `toml:"default_key"`
	DefaultTags []string `toml:"default_tags"`
	Permissions struct {
		Directory string `toml:"directory"`
		File      string `toml:"file"`
	} `toml:"permissions"`
	Watch struct {
		Debounce string `toml:"debounce"`
	} `toml:"watch"`
}

// Render returns cfg as TOML, suitable for pasting into config.toml.
func Render(cfg *Config) (string, error) {
	var v fileView
	v.Root = cfg.Root
	v.DefaultKey = cfg.DefaultKey
	v.DefaultTags = cfg.DefaultTags
	v.Permissions.Directory = fmt.Sprintf("%#o", uint32(cfg.Permissions.Directory.Perm()))
	v.Permissions.File = fmt.Sprintf("%#o", uint32(cfg.Permissions.File.Perm()))
	v.Watch.Debounce = cfg.Watch.Debounce.String()

	out, err := toml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(out), nil
}
