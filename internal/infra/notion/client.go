// Package notion provides the Notion REST API client used for publishing.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Ensure Client implements domain.Publisher.
var _ domain.Publisher = (*Client)(nil)

// Client talks to the Notion REST API.
// Fields are ordered to minimize memory padding.
type Client struct {
	httpClient   *http.Client
	apiURL       string
	token        string
	databaseID   string
	parentPageID string
}

// NewClient creates a Client. databaseID and parentPageID may be empty;
// page creation picks the first configured parent (database, then page).
func NewClient(apiURL, token, databaseID, parentPageID string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiURL:       apiURL,
		token:        token,
		databaseID:   databaseID,
		parentPageID: parentPageID,
	}
}

// FindPage returns the ID of an existing release-notes page, or "" if none
// exists. With a database configured the lookup is an exact title match;
// otherwise it falls back to workspace search.
func (c *Client) FindPage(ctx context.Context, version string) (string, error) {
	title := domain.PageTitle(version)

	var body any
	var path string
	if c.databaseID != "" {
		path = "/databases/" + c.databaseID + "/query"
		body = map[string]any{
			"filter": map[string]any{
				"property": "Name",
				"title":    map[string]any{"equals": title},
			},
		}
	} else {
		path = "/search"
		body = map[string]any{
			"query": title,
			"filter": map[string]any{
				"property": "object",
				"value":    "page",
			},
		}
	}

	var out struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return "", fmt.Errorf("find page for %s: %w", version, err)
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].ID, nil
}

// CreatePage creates a release-notes page and returns its ID.
func (c *Client) CreatePage(ctx context.Context, draft domain.PageDraft) (string, error) {
	payload := map[string]any{
		"children": blocksToWire(draft.Blocks),
	}

	if c.databaseID != "" {
		payload["parent"] = map[string]any{"database_id": c.databaseID}
		payload["properties"] = c.databaseProperties(draft)
	} else {
		if c.parentPageID != "" {
			payload["parent"] = map[string]any{"page_id": c.parentPageID}
		}
		// Page parents only accept the title property.
		payload["properties"] = map[string]any{
			"title": titleProperty(domain.PageTitle(draft.Version)),
		}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/pages", payload, &out); err != nil {
		return "", fmt.Errorf("create page for %s: %w", draft.Version, err)
	}
	return out.ID, nil
}

// UpdatePage replaces the content of an existing page: existing child blocks
// are removed, then the new blocks are appended.
func (c *Client) UpdatePage(ctx context.Context, pageID string, blocks []domain.Block) error {
	var children struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := c.do(ctx, http.MethodGet, "/blocks/"+pageID+"/children", nil, &children); err != nil {
		return fmt.Errorf("list page children: %w", err)
	}
	for _, child := range children.Results {
		if err := c.do(ctx, http.MethodDelete, "/blocks/"+child.ID, nil, nil); err != nil {
			return fmt.Errorf("delete block %s: %w", child.ID, err)
		}
	}

	payload := map[string]any{"children": blocksToWire(blocks)}
	if err := c.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", payload, nil); err != nil {
		return fmt.Errorf("append blocks: %w", err)
	}
	return nil
}

// databaseProperties builds the page properties for a database parent.
func (c *Client) databaseProperties(draft domain.PageDraft) map[string]any {
	props := map[string]any{
		"Name": titleProperty(domain.PageTitle(draft.Version)),
		"Version": map[string]any{
			"rich_text": []map[string]any{
				{"text": map[string]any{"content": draft.Version}},
			},
		},
		"Date": map[string]any{
			"date": map[string]any{"start": draft.GeneratedAt.Format(time.RFC3339)},
		},
		"Status": map[string]any{
			"select": map[string]any{"name": "Published"},
		},
	}
	if len(draft.Categories) > 0 {
		tags := make([]map[string]any, 0, len(draft.Categories))
		for _, cat := range draft.Categories {
			tags = append(tags, map[string]any{"name": cat})
		}
		props["Categories"] = map[string]any{"multi_select": tags}
	}
	return props
}

func titleProperty(title string) map[string]any {
	return map[string]any{
		"title": []map[string]any{
			{"text": map[string]any{"content": title}},
		},
	}
}

// do sends one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.token == "" {
		return domain.ErrNoNotionToken
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", domain.DefaultNotionAPIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
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
