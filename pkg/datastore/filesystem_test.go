package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"default", "all\n", []string{"all"}},
		{"no trailing newline", "all\nwork", []string{"all", "work"}},
		{"empty file", "", []string{}},
		{"blank lines skipped", "all\n\nwork\n", []string{"all", "work"}},
		{"quoted style tags keep spaces", "all\nhome laptop\n", []string{"all", "home laptop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			env.WriteRootFile("tags", tt.content)

			tags, err := New(env.FS, env.Paths).Tags()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tags.Sorted())
		})
	}
}

func TestTagsMissingFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	require.NoError(t, os.Remove(filepath.Join(env.Root, "tags")))

	_, err := New(env.FS, env.Paths).Tags()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestAddTags(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := New(env.FS, env.Paths)

	tags, err := store.AddTags([]string{"work"})
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "work"}, tags.Sorted())
	assert.Equal(t, "all\nwork\n", testutil.ReadFile(t, env.Paths.TagFile()))

	// Adding again is idempotent and keeps the file sorted.
	_, err = store.AddTags([]string{"work", "desktop", "all"})
	require.NoError(t, err)
	assert.Equal(t, "all\ndesktop\nwork\n", testutil.ReadFile(t, env.Paths.TagFile()))
}

func TestKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := New(env.FS, env.Paths)

	key, err := store.Key()
	require.NoError(t, err)
	assert.Equal(t, "~~~", key)

	// Only one trailing newline is trimmed; inner whitespace is significant.
	env.WriteRootFile("key", " @@ \n")
	key, err = store.Key()
	require.NoError(t, err)
	assert.Equal(t, " @@ ", key)
}

func TestSetKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	store := New(env.FS, env.Paths)

	require.NoError(t, store.SetKey("#%"))
	assert.Equal(t, "#%\n", testutil.ReadFile(t, env.Paths.KeyFile()))

	key, err := store.Key()
	require.NoError(t, err)
	assert.Equal(t, "#%", key)

	err = store.SetKey("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = store.SetKey("a\nb")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
