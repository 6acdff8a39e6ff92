package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/domain"
)

func TestLabelsCommand_ListsReleaseLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"viewer":{"organization":{"labels":{"nodes":[
			{"name":"106.4.0","createdAt":"2026-01-03T00:00:00Z"},
			{"name":"Bug","createdAt":"2025-01-01T00:00:00Z"},
			{"name":"106.5.0","createdAt":"2026-01-10T00:00:00Z"}
		]}}}}}`))
	}))
	t.Cleanup(server.Close)

	cfg := domain.NewDefaultConfig()
	cfg.Linear.APIURL = server.URL
	c, _, _ := newTestContainer(cfg)
	t.Setenv(app.LinearAPIKeyEnv, "lin_api_test")

	out, _, err := execute(newLabelsCommand(c))
	require.NoError(t, err)

	// Non-version labels are filtered, newest version first
	assert.Equal(t, "106.5.0\t2026-01-10\n106.4.0\t2026-01-03\n", out)
}

func TestLabelsCommand_NoAPIKey(t *testing.T) {
	c, _, _ := newTestContainer(nil)
	t.Setenv(app.LinearAPIKeyEnv, "")

	_, _, err := execute(newLabelsCommand(c))
	assert.ErrorIs(t, err, domain.ErrNoLinearAPIKey)
}

func TestViewsCommand_ListsTeams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"viewer":{"organization":{"teams":{"nodes":[
			{"id":"team-1","name":"Platform"}
		]}}}}}`))
	}))
	t.Cleanup(server.Close)

	cfg := domain.NewDefaultConfig()
	cfg.Linear.APIURL = server.URL
	c, _, _ := newTestContainer(cfg)
	t.Setenv(app.LinearAPIKeyEnv, "lin_api_test")

	out, _, err := execute(newViewsCommand(c))
	require.NoError(t, err)
	assert.Equal(t, "team-1\tPlatform\n", out)
}
