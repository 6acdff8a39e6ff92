package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/usecase"
)

// newGenerateCommand creates the generate command.
func newGenerateCommand(c *app.Container) *cobra.Command {
	var label string
	var view string
	var version string
	var out string
	var save bool
	var publish bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate release notes markdown",
		Long: `Generate release notes markdown from Linear issues.

Issues are fetched by release label (--label) or by team view (--view).
When fetching by view, --version is required for the document title; with
--label it defaults to the label itself.

The markdown is printed to stdout. Use --out to write it to a file,
--save to record it in the local release store, or --publish to upsert
it into Notion.`,
		Example: `  relnotes generate --label 106.5.0
  relnotes generate --label 106.5.0 --save --publish
  relnotes generate --view team-id --version 106.5.0 --out notes.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.GenerateNotesUseCase()
			if err != nil {
				return err
			}

			result, err := uc.Execute(cmd.Context(), usecase.GenerateNotesInput{
				Label:   label,
				ViewID:  view,
				Version: version,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Fetched %d issues (%d excluded)\n", result.IssueCount, result.SkippedCount)

			sink := false
			if out != "" {
				//nolint:gosec // changelog files are not sensitive
				if err := os.WriteFile(out, []byte(result.Markdown), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
				sink = true
			}
			if save {
				saved, err := c.SaveNotesUseCase().Execute(cmd.Context(), usecase.SaveNotesInput{
					GeneratedAt: result.GeneratedAt,
					Version:     result.Version,
					Markdown:    result.Markdown,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", saved.Path)
				sink = true
			}
			if publish {
				pub, err := c.PublishNotesUseCase()
				if err != nil {
					return err
				}
				published, err := pub.Execute(cmd.Context(), usecase.PublishNotesInput{
					GeneratedAt: result.GeneratedAt,
					Version:     result.Version,
					Markdown:    result.Markdown,
				})
				if err != nil {
					return err
				}
				if published.Created {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Created Notion page %s\n", published.PageID)
				} else {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Updated Notion page %s\n", published.PageID)
				}
				sink = true
			}

			if !sink {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Markdown)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Release label to fetch issues by")
	cmd.Flags().StringVar(&view, "view", "", "Team view ID to fetch issues from")
	cmd.Flags().StringVarP(&version, "version", "V", "", "Version for the document title (defaults to --label)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write markdown to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Record the notes in the local release store")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upsert the notes into Notion")

	return cmd
}
