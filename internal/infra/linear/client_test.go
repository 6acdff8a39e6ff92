package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "lin_api_test")
}

func TestClient_IssuesByLabel(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"data": {"issues": {"nodes": [
			{
				"identifier": "GP-74",
				"title": "Fix login bug",
				"url": "https://linear.app/acme/issue/GP-74",
				"state": {"name": "Done"},
				"labels": {"nodes": [{"name": "Bug"}, {"name": "106.5.0"}]}
			},
			{
				"identifier": "GP-75",
				"title": "No url issue",
				"url": null,
				"state": {"name": "In Progress"},
				"labels": {"nodes": []}
			}
		]}}}`))
	})

	issues, err := client.IssuesByLabel(context.Background(), "106.5.0")
	require.NoError(t, err)

	assert.Equal(t, "lin_api_test", gotAuth)
	vars, ok := gotBody["variables"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "106.5.0", vars["releaseLabel"])

	require.Len(t, issues, 2)
	assert.Equal(t, domain.Issue{
		Identifier: "GP-74",
		Title:      "Fix login bug",
		URL:        "https://linear.app/acme/issue/GP-74",
		State:      "Done",
		Labels:     []string{"Bug", "106.5.0"},
	}, issues[0])
	assert.Empty(t, issues[1].URL)
	assert.Empty(t, issues[1].Labels)
}

func TestClient_IssuesByView_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"view": null}}`))
	})

	_, err := client.IssuesByView(context.Background(), "missing-view")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ReleaseLabels_FilteredAndSorted(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"viewer": {"organization": {"labels": {"nodes": [
			{"name": "Bug", "createdAt": "2025-01-01T00:00:00Z"},
			{"name": "106.4.0", "createdAt": "2025-02-01T00:00:00Z"},
			{"name": "Subjects", "createdAt": "2025-03-01T00:00:00Z"},
			{"name": "106.5.0", "createdAt": "2025-04-01T00:00:00Z"}
		]}}}}}`))
	})

	labels, err := client.ReleaseLabels(context.Background())
	require.NoError(t, err)

	require.Len(t, labels, 2)
	assert.Equal(t, "106.5.0", labels[0].Name)
	assert.Equal(t, "106.4.0", labels[1].Name)
}

func TestClient_Teams(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"viewer": {"organization": {"teams": {"nodes": [
			{"id": "team-1", "name": "Platform"},
			{"id": "team-2", "name": "Clinical"}
		]}}}}}`))
	})

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Team{
		{ID: "team-1", Name: "Platform"},
		{ID: "team-2", Name: "Clinical"},
	}, teams)
}

func TestClient_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domain.ErrAuthentication},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domain.ErrAuthentication},
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: domain.ErrTransientNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.IssuesByLabel(context.Background(), "1.0.0")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GraphQLAuthenticationError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "authentication required"}]}`))
	})

	_, err := client.IssuesByLabel(context.Background(), "1.0.0")
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestClient_NoAPIKey(t *testing.T) {
	client := NewClient("http://unused", "")

	_, err := client.IssuesByLabel(context.Background(), "1.0.0")
	assert.ErrorIs(t, err, domain.ErrNoLinearAPIKey)
}

func TestClient_TransportErrorIsTransient(t *testing.T) {
	srv, client := newTestServer(t, func(http.ResponseWriter, *http.Request) {})
	srv.Close()

	_, err := client.IssuesByLabel(context.Background(), "1.0.0")
	assert.ErrorIs(t, err, domain.ErrTransientNetwork)
}
