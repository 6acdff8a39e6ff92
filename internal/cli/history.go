package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List locally saved releases",
		Long: `List the releases recorded in the local release store, newest
version first. Releases that have been published show their Notion
page ID.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListHistoryUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No saved releases")
				return nil
			}
			for _, rec := range out.Records {
				line := fmt.Sprintf("%s\t%s\t%s", rec.Version, rec.GeneratedAt.Format("2006-01-02 15:04"), rec.Path)
				if rec.PageID != "" {
					line += "\t" + rec.PageID
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	return cmd
}
