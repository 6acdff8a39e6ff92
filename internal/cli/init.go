package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a configuration file template.

By default, creates relnotes.toml in the current directory. With
--global, creates the global configuration file under the user config
directory instead.

Error conditions:
- Target file already exists: error`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Create the global configuration file")

	return cmd
}
