package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pymk/pymk/cmd/tui/ui"
	"github.com/pymk/pymk/internal/tasks"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick and run a task interactively",
	RunE: func(_ *cobra.Command, _ []string) error {
		m := ui.NewModel(tasks.Builtin())
		p := tea.NewProgram(m, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}
		if fm, ok := final.(*ui.Model); ok {
			if name := fm.Choice(); name != "" {
				return runTask(name, nil, optionsFromFlags())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
