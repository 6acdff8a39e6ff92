package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arun-karra/release-notes/internal/domain"
)

func TestInitCommand_Local(t *testing.T) {
	c, _, manager := newTestContainer(nil)

	out, _, err := execute(newInitCommand(c))
	require.NoError(t, err)

	assert.Contains(t, out, "Created config file: /work/relnotes.toml")
	assert.Equal(t, 1, manager.InitLocals)
}

func TestInitCommand_Global(t *testing.T) {
	c, _, manager := newTestContainer(nil)

	out, _, err := execute(newInitCommand(c), "--global")
	require.NoError(t, err)

	assert.Contains(t, out, "Created config file: /home/u/.config/relnotes/config.toml")
	assert.Equal(t, 1, manager.InitGlobals)
}

func TestInitCommand_AlreadyExists(t *testing.T) {
	c, _, manager := newTestContainer(nil)
	manager.InitErr = domain.ErrConfigExists

	_, _, err := execute(newInitCommand(c))
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
