package domain

import "errors"

// Domain errors.
var (
	ErrAuthentication   = errors.New("authentication failed (check API key)")
	ErrNotFound         = errors.New("resource not found")
	ErrTransientNetwork = errors.New("transient network error")
	ErrNoLinearAPIKey   = errors.New("LINEAR_API_KEY not set")
	ErrNoNotionToken    = errors.New("NOTION_TOKEN not set")
	ErrConfigExists     = errors.New("config file already exists")
	ErrEmptyVersion     = errors.New("release version cannot be empty")
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrNoReleaseSource  = errors.New("either a release label or a view ID is required")
	ErrReleaseNotFound  = errors.New("release not found in the local store")
)
