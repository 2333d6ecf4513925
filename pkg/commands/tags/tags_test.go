package tags

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(env *testutil.TestEnvironment, tags ...string) TagsOptions {
	return TagsOptions{
		Options: session.Options{FileSystem: env.FS, Paths: env.Paths},
		Tags:    tags,
	}
}

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "work", "all")

	result, err := List(options(env))
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "work"}, result.Tags)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		initial   []string
		add       []string
		wantFile  string
		wantAdded []string
	}{
		{
			name:      "new tags are merged and sorted",
			initial:   []string{"all"},
			add:       []string{"work", "laptop"},
			wantFile:  "all\nlaptop\nwork\n",
			wantAdded: []string{"laptop", "work"},
		},
		{
			name:      "present tags are not duplicated",
			initial:   []string{"all", "work"},
			add:       []string{"work", "work"},
			wantFile:  "all\nwork\n",
			wantAdded: nil,
		},
		{
			name:      "nothing to add rewrites sorted",
			initial:   []string{"work", "all"},
			add:       nil,
			wantFile:  "all\nwork\n",
			wantAdded: nil,
		},
		{
			name:      "tags may contain spaces",
			initial:   []string{"all"},
			add:       []string{"home office"},
			wantFile:  "all\nhome office\n",
			wantAdded: []string{"home office"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, tt.initial...)

			result, err := Add(options(env, tt.add...))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, result.Added)
			assert.Equal(t, tt.wantFile, testutil.ReadFile(t, env.Paths.TagFile()))
		})
	}
}

func TestAddRejectsBadTags(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	for _, tag := range []string{"", "line\nbreak", "carriage\rreturn"} {
		_, err := Add(options(env, tag))
		require.Error(t, err, "%q", tag)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
	assert.Equal(t, "all\n", testutil.ReadFile(t, env.Paths.TagFile()))
}

func TestAddNotInitialized(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p, err := paths.New(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	_, err = Add(TagsOptions{Options: session.Options{Paths: p}, Tags: []string{"work"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotInitialized))
}
