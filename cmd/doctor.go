package cmd

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/executor"
	"github.com/pymk/pymk/internal/tasks"
)

// lookPath is a hook so tests can simulate missing tools.
var lookPath = exec.LookPath

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the external tools the tasks invoke are installed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var missing []string
		for _, prog := range taskPrograms(tasks.Builtin()) {
			if _, err := lookPath(prog); err != nil {
				missing = append(missing, prog)
				fmt.Fprintf(cmd.OutOrStdout(), "missing  %s\n", prog)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok       %s\n", prog)
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
		}
		return nil
	},
}

// taskPrograms returns the sorted, de-duplicated program names invoked by
// any registered command.
func taskPrograms(reg *tasks.Registry) []string {
	set := make(map[string]bool)
	for _, n := range reg.Names() {
		t, _ := reg.Get(n)
		for _, c := range t.Commands {
			prog, err := executor.CommandProgram(c)
			if err != nil {
				continue
			}
			set[prog] = true
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
