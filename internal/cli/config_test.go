package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arun-karra/release-notes/internal/domain"
)

func TestConfigShowCommand(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Notion.DatabaseID = "db-123"
	c, _, manager := newTestContainer(cfg)
	manager.Local.Exists = true

	out, _, err := execute(newConfigCommand(c), "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "- /work/relnotes.toml\n")
	assert.Contains(t, out, "- /home/u/.config/relnotes/config.toml (not found)")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "db-123")
	assert.Contains(t, out, domain.DefaultLinearAPIURL)
}

func TestConfigTemplateCommand(t *testing.T) {
	c, _, _ := newTestContainer(nil)

	out, _, err := execute(newConfigCommand(c), "template")
	require.NoError(t, err)

	assert.Contains(t, out, "[linear]")
	assert.Contains(t, out, "[notion]")
	assert.Contains(t, out, "LINEAR_API_KEY")
}
