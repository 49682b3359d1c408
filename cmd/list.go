package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/tasks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflow tasks",
	Long:  "List workflow tasks. Example:\n  pymk list --filter clean",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		reg := tasks.Builtin()

		names := reg.Names()
		if filter != "" {
			names = reg.Suggest(filter, 0)
		}
		for _, n := range names {
			t, _ := reg.Get(n)
			if t.Summary == "" {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", n)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("filter", "", "Fuzzy-filter tasks by name")
	rootCmd.AddCommand(listCmd)
}
