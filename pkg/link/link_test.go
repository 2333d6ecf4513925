package link

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/dotf/pkg/compile"
	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/arthur-debert/dotf/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compiledSession(t *testing.T, env *testutil.TestEnvironment) *session.Session {
	t.Helper()
	s, err := session.Load(env.FS, env.Paths, nil)
	require.NoError(t, err)
	_, err = compile.Run(s)
	require.NoError(t, err)
	return s
}

func TestRunLinksUnlinkedFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	env.WriteDotfile("gitconfig", "# ~~~ location ~/.config/git/config ~~~\n[user]\n")
	s := compiledSession(t, env)

	result, err := Run(s, Options{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	for _, item := range result.Items {
		assert.Equal(t, OutcomeLinked, item.Outcome, item.Name)
		assert.Equal(t, types.Unlinked, item.Status, item.Name)
	}
	testutil.AssertSymlink(t, env.HomePath(".bashrc"), env.CompiledPath("bashrc"))
	testutil.AssertSymlink(t, env.HomePath(".config", "git", "config"), env.CompiledPath("gitconfig"))
}

func TestRunIsIdempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	s := compiledSession(t, env)

	_, err := Run(s, Options{})
	require.NoError(t, err)

	result, err := Run(s, Options{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, OutcomeAlreadyLinked, result.Items[0].Outcome)
	assert.Equal(t, types.Linked, result.Items[0].Status)
}

func TestRunLeavesProblemsAlone(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	env.WriteDotfile("vimrc", "set nu\n")
	testutil.WriteFile(t, env.HomePath(".bashrc"), "mine\n")
	s := compiledSession(t, env)

	result, err := Run(s, Options{})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "bashrc", result.Items[0].Name)
	assert.Equal(t, OutcomeCannotLink, result.Items[0].Outcome)
	assert.Equal(t, types.Problem, result.Items[0].Status)
	assert.Equal(t, "mine\n", testutil.ReadFile(t, env.HomePath(".bashrc")))
	testutil.AssertSymlink(t, env.HomePath(".vimrc"), env.CompiledPath("vimrc"))
}

func TestRunDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	s := compiledSession(t, env)

	result, err := Run(s, Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	require.Len(t, result.Items, 1)
	assert.Equal(t, OutcomeLinked, result.Items[0].Outcome)
	testutil.AssertNotExists(t, env.HomePath(".bashrc"))
}

func TestRunUsesCompiledLocation(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	s := compiledSession(t, env)

	// edited after compiling: the link still follows the compiled file
	env.WriteDotfile("bashrc", "# ~~~ location ~/elsewhere ~~~\n")

	_, err := Run(s, Options{})
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.HomePath(".bashrc"), env.CompiledPath("bashrc"))
	testutil.AssertNotExists(t, env.HomePath("elsewhere"))
}

func TestRunFailsFastOnSymlinkError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("a", "# ~~~ location ~/blocked/a ~~~\n")
	env.WriteDotfile("b", "x\n")
	testutil.WriteFile(t, env.HomePath("blocked"), "a file, not a directory\n")
	s := compiledSession(t, env)

	result, err := Run(s, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Empty(t, result.Items)
	testutil.AssertNotExists(t, env.HomePath(".b"))
}

func TestRunWithoutCompiledDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	require.NoError(t, os.RemoveAll(env.CompiledPath("")))
	s, err := session.Load(env.FS, env.Paths, nil)
	require.NoError(t, err)

	_, err = Run(s, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
}

func TestUnlink(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	env.WriteDotfile("vimrc", "set nu\n")
	env.WriteDotfile("zshrc", "x\n")
	s := compiledSession(t, env)

	_, err := Run(s, Options{})
	require.NoError(t, err)
	require.NoError(t, os.Remove(env.HomePath(".vimrc")))
	testutil.WriteFile(t, env.HomePath(".vimrc"), "mine\n")
	require.NoError(t, os.Remove(env.HomePath(".zshrc")))

	result, err := Unlink(s, Options{})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, OutcomeUnlinked, result.Items[0].Outcome)
	assert.Equal(t, OutcomeSkipped, result.Items[1].Outcome)
	assert.Equal(t, OutcomeSkipped, result.Items[2].Outcome)

	testutil.AssertNotExists(t, env.HomePath(".bashrc"))
	assert.Equal(t, "mine\n", testutil.ReadFile(t, env.HomePath(".vimrc")))
}

func TestUnlinkDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	s := compiledSession(t, env)
	_, err := Run(s, Options{})
	require.NoError(t, err)

	result, err := Unlink(s, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnlinked, result.Items[0].Outcome)
	testutil.AssertSymlink(t, env.HomePath(".bashrc"), env.CompiledPath("bashrc"))
}

func TestRunReportsCompiledDiagnostics(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	s := compiledSession(t, env)
	testutil.WriteFile(t, env.CompiledPath("bashrc"), "# ~~~ frob ~~~\nexport A=1\n")

	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = saved })

	result, err := Run(s, Options{})
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, buf.String(), "frob")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
