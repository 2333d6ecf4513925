package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotf/pkg/errors"
)

// Environment variable names
const (
	// EnvRoot overrides the configured root directory
	EnvRoot = "DOTF_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Layout of a dotf root. These names are part of the on-disk format and are
// not configurable.
const (
	DotfilesDirName = "dotfiles"
	CompiledDirName = ".compiled"
	TagFileName     = "tags"
	KeyFileName     = "key"

	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotf"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for dotf
type Paths interface {
	Root() string
	DotfilesDir() string
	CompiledDir() string
	TagFile() string
	KeyFile() string
	CompiledPath(name string) string
	HomeDir() string
}

type paths struct {
	root string
	home string
}

// New creates a Paths instance for root. A leading ~ is expanded and the
// result made absolute.
func New(root string) (Paths, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "root path cannot be empty")
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for root %s", root)
	}

	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	return &paths{root: abs, home: home}, nil
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) DotfilesDir() string {
	return filepath.Join(p.root, DotfilesDirName)
}

func (p *paths) CompiledDir() string {
	return filepath.Join(p.root, CompiledDirName)
}

func (p *paths) TagFile() string {
	return filepath.Join(p.root, TagFileName)
}

func (p *paths) KeyFile() string {
	return filepath.Join(p.root, KeyFileName)
}

// CompiledPath returns the compiled counterpart of a source file, matched by
// basename.
func (p *paths) CompiledPath(name string) string {
	return filepath.Join(p.CompiledDir(), filepath.Base(name))
}

func (p *paths) HomeDir() string {
	return p.home
}

// HomeDir returns the user's home directory, preferring $HOME.
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "could not determine home directory")
	}
	return home, nil
}

// ConfigFile returns $XDG_CONFIG_HOME/dotf/config.toml.
func ConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// ExpandHome expands a leading ~ or ~/ to the home directory. Other forms
// (~user) are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := HomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}
