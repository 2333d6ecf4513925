package key

import (
	"os"
	"testing"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(env *testutil.TestEnvironment, key string) KeyOptions {
	return KeyOptions{
		Options: session.Options{FileSystem: env.FS, Paths: env.Paths},
		Key:     key,
	}
}

func TestGet(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := Get(options(env, ""))
	require.NoError(t, err)
	assert.Equal(t, "~~~", result.Key)
}

func TestSet(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := Set(options(env, "%%"))
	require.NoError(t, err)
	assert.Equal(t, "%%", result.Key)
	assert.Equal(t, "~~~", result.Previous)
	assert.Equal(t, "%%\n", testutil.ReadFile(t, env.Paths.KeyFile()))

	s, err := session.Load(env.FS, env.Paths, nil)
	require.NoError(t, err)
	assert.Equal(t, "%%", s.Key)
}

func TestSetRepairsMissingKey(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	require.NoError(t, os.Remove(env.Paths.KeyFile()))

	result, err := Set(options(env, "@@"))
	require.NoError(t, err)
	assert.Empty(t, result.Previous)
	assert.Equal(t, "@@\n", testutil.ReadFile(t, env.Paths.KeyFile()))
}

func TestSetRejectsInvalidKeys(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	for _, k := range []string{"", "a\nb"} {
		_, err := Set(options(env, k))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
	assert.Equal(t, "~~~\n", testutil.ReadFile(t, env.Paths.KeyFile()))
}
