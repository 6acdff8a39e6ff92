package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_Help(t *testing.T) {
	c, _, _ := newTestContainer(nil)
	root := NewRootCommand(c, "test-version")

	out, _, err := execute(root, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "relnotes generates release notes")
	assert.Contains(t, out, "Generation Commands:")
	assert.Contains(t, out, "Publishing Commands:")
	assert.Contains(t, out, "Setup Commands:")
}

func TestNewRootCommand_Version(t *testing.T) {
	c, _, _ := newTestContainer(nil)
	root := NewRootCommand(c, "1.2.3")

	out, _, err := execute(root, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_UnknownCommand(t *testing.T) {
	c, _, _ := newTestContainer(nil)
	root := NewRootCommand(c, "test-version")

	_, _, err := execute(root, "frobnicate")
	assert.Error(t, err)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _, _ := newTestContainer(nil)
	c.Config.Warnings = []string{"unknown key in relnotes.toml"}
	root := NewRootCommand(c, "test-version")

	_, stderr, err := execute(root, "history")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key in relnotes.toml")
}
