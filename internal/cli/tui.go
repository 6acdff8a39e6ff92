package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/tui/picker"
	"github.com/arun-karra/release-notes/internal/usecase"
)

// launchPickerFunc is a function variable for launching the release picker,
// allowing it to be mocked in tests.
var launchPickerFunc = launchPicker

// newTUICommand creates the tui command for the interactive release picker.
func newTUICommand(c *app.Container) *cobra.Command {
	var save bool
	var publish bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick a release interactively and generate its notes",
		Long: `Launch an interactive picker over the release labels found in
Linear. Selecting a release generates its notes; the markdown is
printed to stdout unless --save or --publish is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, err := c.Tracker()
			if err != nil {
				return err
			}

			label, err := launchPickerFunc(tracker)
			if err != nil {
				return err
			}
			if label == "" {
				// User quit without selecting
				return nil
			}

			uc, err := c.GenerateNotesUseCase()
			if err != nil {
				return err
			}
			result, err := uc.Execute(cmd.Context(), usecase.GenerateNotesInput{Label: label})
			if err != nil {
				return err
			}

			sink := false
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

	cmd.Flags().BoolVar(&save, "save", false, "Record the notes in the local release store")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upsert the notes into Notion")

	return cmd
}

// launchPicker runs the release picker and returns the selected label.
func launchPicker(tracker domain.IssueTracker) (string, error) {
	model := picker.New(tracker)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(*picker.Model); ok {
		if m.Err() != nil {
			return "", m.Err()
		}
		return m.Choice(), nil
	}
	return model.Choice(), nil
}
