package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "all", "work")

	s, err := Load(env.FS, env.Paths, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"all", "work"}, s.Tags.Sorted())
	assert.Equal(t, "~~~", s.Key)
	assert.Equal(t, os.FileMode(0644), s.FilePerm())
	assert.Equal(t, os.FileMode(0755), s.DirPerm())
}

func TestLoadNotInitialized(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p, err := paths.New(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	env := testutil.NewTestEnvironment(t)
	_, err = Load(env.FS, p, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotInitialized))
}

func TestLoadEmptyKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteRootFile("key", "\n")

	_, err := Load(env.FS, env.Paths, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestSessionIsNotRefreshed(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	s, err := Load(env.FS, env.Paths, nil)
	require.NoError(t, err)

	env.WriteRootFile("tags", "all\nwork\n")
	assert.False(t, s.Tags.Has("work"), "a loaded session keeps the tags it read")

	fresh, err := Load(env.FS, env.Paths, nil)
	require.NoError(t, err)
	assert.True(t, fresh.Tags.Has("work"))
}

func TestSourcesAndCompiled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("vimrc", "x\n")
	env.WriteDotfile("bashrc", "x\n")
	env.WriteDotfile(".DS_Store", "x\n")
	testutil.WriteFile(t, env.CompiledPath("bashrc"), "x\n")

	s, err := Load(env.FS, env.Paths, nil)
	require.NoError(t, err)

	sources, err := s.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(env.Root, "dotfiles", "bashrc"),
		filepath.Join(env.Root, "dotfiles", "vimrc"),
	}, sources)

	compiled, err := s.Compiled()
	require.NoError(t, err)
	assert.Equal(t, []string{env.CompiledPath("bashrc")}, compiled)

	require.NoError(t, os.RemoveAll(filepath.Join(env.Root, "dotfiles")))
	_, err = s.Sources()
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
}
