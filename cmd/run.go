package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/tasks"
)

var runCmd = &cobra.Command{
	Use:   "run <task> [NAME=VALUE...]",
	Short: "Run a named workflow task",
	Long:  "Run a named workflow task. Example:\n  pymk run release PYPI_REPOSITORY=pypi",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		vars, rest, err := tasks.ParseOverrides(args[1:])
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("unexpected arguments: %v", rest)
		}
		return runTask(args[0], vars, optionsFromFlags())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
