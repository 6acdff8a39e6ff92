// Package cli provides the command-line interface for relnotes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
)

// Command group IDs.
const (
	groupGenerate = "generate"
	groupPublish  = "publish"
	groupSetup    = "setup"
)

// NewRootCommand creates the root command for relnotes.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "relnotes",
		Short: "Release notes generator for Linear and Notion",
		Long: `relnotes generates release notes from Linear issues and publishes
them to Notion.

Issues are fetched by release label (or team view), grouped into
categories from their labels, and rendered as a markdown changelog.
The changelog can be saved locally and upserted into a Notion database.

Credentials come from the LINEAR_API_KEY and NOTION_TOKEN environment
variables; everything else is configured in relnotes.toml.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generation Commands:"},
		&cobra.Group{ID: groupPublish, Title: "Publishing Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	generateCmd := newGenerateCommand(c)
	generateCmd.GroupID = groupGenerate

	labelsCmd := newLabelsCommand(c)
	labelsCmd.GroupID = groupGenerate

	viewsCmd := newViewsCommand(c)
	viewsCmd.GroupID = groupGenerate

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupGenerate

	publishCmd := newPublishCommand(c)
	publishCmd.GroupID = groupPublish

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupPublish

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		generateCmd,
		labelsCmd,
		viewsCmd,
		tuiCmd,
		publishCmd,
		historyCmd,
		initCmd,
		configCmd,
	)

	return root
}
