package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/tasks"
)

var describeCmd = &cobra.Command{
	Use:   "describe <task> [NAME=VALUE...]",
	Short: "Show a task's dependencies and expanded command sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		overrides, rest, err := tasks.ParseOverrides(args[1:])
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("unexpected arguments: %v", rest)
		}

		reg := tasks.Builtin()
		t, ok := reg.Get(name)
		if !ok {
			return fmt.Errorf("unknown task: %s", name)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name: %s\n", t.Name)
		if t.Summary != "" {
			fmt.Fprintf(out, "Summary: %s\n", t.Summary)
		}
		if len(t.Deps) > 0 {
			fmt.Fprintf(out, "Depends on: %s\n", strings.Join(t.Deps, ", "))
		}
		if len(t.Commands) > 0 {
			vars := effectiveVars(optionsFromFlags(), overrides)
			fmt.Fprintln(out, "Commands:")
			for i, c := range t.Commands {
				fmt.Fprintf(out, "%d: %s\n", i+1, tasks.Expand(c, vars))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
