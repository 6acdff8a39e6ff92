package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
)

// newLabelsCommand creates the labels command.
func newLabelsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List release labels",
		Long: `List the release labels found in Linear, newest version first.

Only labels matching an X.Y.Z version pattern are shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.ListLabelsUseCase()
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Labels) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No release labels found")
				return nil
			}
			for _, label := range out.Labels {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", label.Name, label.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
	return cmd
}
