package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/usecase"
)

// newPublishCommand creates the publish command.
func newPublishCommand(c *app.Container) *cobra.Command {
	var version string
	var file string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish saved release notes to Notion",
		Long: `Publish release notes markdown to Notion.

By default the changelog saved for --version is read from the local
release store. Use --file to publish an arbitrary markdown file instead.

If a page for the version already exists it is updated in place;
otherwise a new page is created.`,
		Example: `  relnotes publish --version 106.5.0
  relnotes publish --version 106.5.0 --file notes.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				path = filepath.Join(c.Config.Output.Dir, domain.ChangelogFileName(version))
			}
			markdown, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			uc, err := c.PublishNotesUseCase()
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context(), usecase.PublishNotesInput{
				GeneratedAt: c.Clock.Now(),
				Version:     version,
				Markdown:    string(markdown),
			})
			if err != nil {
				return err
			}

			if out.Created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created Notion page %s\n", out.PageID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated Notion page %s\n", out.PageID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "V", "", "Release version to publish")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Markdown file to publish (defaults to the saved changelog)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}
