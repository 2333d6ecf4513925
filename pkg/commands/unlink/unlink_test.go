package unlink

import (
	"testing"

	"github.com/arthur-debert/dotf/pkg/commands/compile"
	dlink "github.com/arthur-debert/dotf/pkg/commands/link"
	"github.com/arthur-debert/dotf/pkg/link"
	"github.com/arthur-debert/dotf/pkg/session"
	"github.com/arthur-debert/dotf/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlinkRestoresUnlinkedState(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfile("bashrc", "export A=1\n")
	opts := session.Options{FileSystem: env.FS, Paths: env.Paths}

	_, err := compile.Compile(compile.CompileOptions{Options: opts})
	require.NoError(t, err)
	_, err = dlink.Link(dlink.LinkOptions{Options: opts})
	require.NoError(t, err)

	result, err := Unlink(UnlinkOptions{Options: opts})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, link.OutcomeUnlinked, result.Items[0].Outcome)
	testutil.AssertNotExists(t, env.HomePath(".bashrc"))

	again, err := Unlink(UnlinkOptions{Options: opts})
	require.NoError(t, err)
	assert.Equal(t, link.OutcomeSkipped, again.Items[0].Outcome)
}
