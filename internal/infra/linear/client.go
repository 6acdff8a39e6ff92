// Package linear provides the Linear GraphQL API client.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// Client talks to the Linear GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewClient creates a Client for the given endpoint and API key.
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiURL:     apiURL,
		apiKey:     apiKey,
	}
}

// GraphQL queries. Only top-level issues (parent: null) belong to a release;
// sub-issues are rolled up into their parent.
const (
	issuesByLabelQuery = `
	query IssuesByReleaseLabel($releaseLabel: String!) {
		issues(filter: {
			labels: { name: { eq: $releaseLabel } },
			parent: { null: true }
		}) {
			nodes {
				identifier
				title
				url
				state { name }
				labels { nodes { name } }
			}
		}
	}`

	issuesByViewQuery = `
	query IssuesByView($viewId: String!) {
		view(id: $viewId) {
			issues {
				nodes {
					identifier
					title
					url
					state { name }
					labels { nodes { name } }
				}
			}
		}
	}`

	labelsQuery = `
	query {
		viewer {
			organization {
				labels {
					nodes {
						name
						createdAt
					}
				}
			}
		}
	}`

	teamsQuery = `
	query {
		viewer {
			organization {
				teams {
					nodes {
						id
						name
					}
				}
			}
		}
	}`
)

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// issueNode mirrors the issue shape returned by the queries above.
type issueNode struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	State      struct {
		Name string `json:"name"`
	} `json:"state"`
	Labels struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"labels"`
}

func (n issueNode) toDomain() domain.Issue {
	labels := make([]string, 0, len(n.Labels.Nodes))
	for _, l := range n.Labels.Nodes {
		labels = append(labels, l.Name)
	}
	return domain.Issue{
		Identifier: n.Identifier,
		Title:      n.Title,
		URL:        n.URL,
		State:      n.State.Name,
		Labels:     labels,
	}
}

// IssuesByLabel retrieves top-level issues carrying the release label.
func (c *Client) IssuesByLabel(ctx context.Context, label string) ([]domain.Issue, error) {
	var data struct {
		Issues struct {
			Nodes []issueNode `json:"nodes"`
		} `json:"issues"`
	}
	if err := c.query(ctx, issuesByLabelQuery, map[string]any{"releaseLabel": label}, &data); err != nil {
		return nil, fmt.Errorf("fetch issues for label %q: %w", label, err)
	}

	issues := make([]domain.Issue, 0, len(data.Issues.Nodes))
	for _, n := range data.Issues.Nodes {
		issues = append(issues, n.toDomain())
	}
	return issues, nil
}

// IssuesByView retrieves issues belonging to a view.
func (c *Client) IssuesByView(ctx context.Context, viewID string) ([]domain.Issue, error) {
	var data struct {
		View *struct {
			Issues struct {
				Nodes []issueNode `json:"nodes"`
			} `json:"issues"`
		} `json:"view"`
	}
	if err := c.query(ctx, issuesByViewQuery, map[string]any{"viewId": viewID}, &data); err != nil {
		return nil, fmt.Errorf("fetch issues for view %q: %w", viewID, err)
	}
	if data.View == nil {
		return nil, fmt.Errorf("view %q: %w", viewID, domain.ErrNotFound)
	}

	issues := make([]domain.Issue, 0, len(data.View.Issues.Nodes))
	for _, n := range data.View.Issues.Nodes {
		issues = append(issues, n.toDomain())
	}
	return issues, nil
}

// ReleaseLabels retrieves labels matching the X.Y.Z release pattern, newest
// version first.
func (c *Client) ReleaseLabels(ctx context.Context) ([]domain.ReleaseLabel, error) {
	var data struct {
		Viewer struct {
			Organization struct {
				Labels struct {
					Nodes []struct {
						Name      string    `json:"name"`
						CreatedAt time.Time `json:"createdAt"`
					} `json:"nodes"`
				} `json:"labels"`
			} `json:"organization"`
		} `json:"viewer"`
	}
	if err := c.query(ctx, labelsQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch labels: %w", err)
	}

	var labels []domain.ReleaseLabel
	for _, n := range data.Viewer.Organization.Labels.Nodes {
		labels = append(labels, domain.ReleaseLabel{Name: n.Name, CreatedAt: n.CreatedAt})
	}
	labels = domain.FilterReleaseLabels(labels)
	domain.SortReleaseLabels(labels)
	return labels, nil
}

// Teams retrieves the organization's teams.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	var data struct {
		Viewer struct {
			Organization struct {
				Teams struct {
					Nodes []struct {
						ID   string `json:"id"`
						Name string `json:"name"`
					} `json:"nodes"`
				} `json:"teams"`
			} `json:"organization"`
		} `json:"viewer"`
	}
	if err := c.query(ctx, teamsQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	teams := make([]domain.Team, 0, len(data.Viewer.Organization.Teams.Nodes))
	for _, n := range data.Viewer.Organization.Teams.Nodes {
		teams = append(teams, domain.Team{ID: n.ID, Name: n.Name})
	}
	return teams, nil
}

// query posts a GraphQL request and decodes the data field into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.apiKey == "" {
		return domain.ErrNoLinearAPIKey
	}
	if variables == nil {
		variables = map[string]any{}
	}

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	var gql graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gql); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gql.Errors) > 0 {
		return graphqlErrorsToDomain(gql.Errors)
	}
	if out != nil {
		if err := json.Unmarshal(gql.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// statusError maps an HTTP status to a domain error kind.
func statusError(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domain.ErrAuthentication
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code >= 500:
		return fmt.Errorf("%w: server returned %d", domain.ErrTransientNetwork, code)
	case code >= 400:
		return fmt.Errorf("request failed with status %d", code)
	}
	return nil
}

// graphqlErrorsToDomain collapses GraphQL errors into one error value,
// surfacing authentication problems as the domain sentinel.
func graphqlErrorsToDomain(errs []graphqlError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	joined := strings.Join(msgs, "; ")
	if strings.Contains(strings.ToLower(joined), "authentication") {
		return fmt.Errorf("%w: %s", domain.ErrAuthentication, joined)
	}
	return fmt.Errorf("graphql: %s", joined)
}
