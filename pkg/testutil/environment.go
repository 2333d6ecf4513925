package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotf/pkg/filesystem"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/types"
)

// TestEnvironment provides an initialized dotf root with all dependencies
type TestEnvironment struct {
	Root  string
	Home  string
	FS    types.FS
	Paths paths.Paths

	t *testing.T
}

// NewTestEnvironment creates a root with the default layout: dotfiles/,
// .compiled/, a tags file containing tags (default "all") and a key file
// containing "~~~".
func NewTestEnvironment(t *testing.T, tags ...string) *TestEnvironment {
	t.Helper()

	tmp := t.TempDir()
	env := &TestEnvironment{
		Root: filepath.Join(tmp, "root"),
		Home: filepath.Join(tmp, "home"),
		FS:   filesystem.NewOS(),
		t:    t,
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg", "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "xdg", "state"))

	for _, dir := range []string{
		env.Home,
		filepath.Join(env.Root, paths.DotfilesDirName),
		filepath.Join(env.Root, paths.CompiledDirName),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	if len(tags) == 0 {
		tags = []string{types.UniversalTag}
	}
	env.WriteRootFile(paths.TagFileName, types.NewTagSet(tags...).Serialize())
	env.WriteRootFile(paths.KeyFileName, "~~~\n")

	p, err := paths.New(env.Root)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// WriteRootFile writes a file directly under the root (tags, key).
func (e *TestEnvironment) WriteRootFile(name, content string) string {
	e.t.Helper()
	return WriteFile(e.t, filepath.Join(e.Root, name), content)
}

// WriteDotfile writes a source dotfile and returns its path.
func (e *TestEnvironment) WriteDotfile(name, content string) string {
	e.t.Helper()
	return WriteFile(e.t, filepath.Join(e.Root, paths.DotfilesDirName, name), content)
}

// CompiledPath returns where the compiled version of name lives.
func (e *TestEnvironment) CompiledPath(name string) string {
	return filepath.Join(e.Root, paths.CompiledDirName, name)
}

// HomePath joins elements onto the fake home directory.
func (e *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{e.Home}, elem...)...)
}
