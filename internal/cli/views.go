package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
)

// newViewsCommand creates the views command.
func newViewsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "List teams usable as issue views",
		Long: `List the Linear teams whose issues can be used as a release source.

The printed IDs can be passed to generate --view.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.ListViewsUseCase()
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Teams) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No teams found")
				return nil
			}
			for _, team := range out.Teams {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", team.ID, team.Name)
			}
			return nil
		},
	}
	return cmd
}
