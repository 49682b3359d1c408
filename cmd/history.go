package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/db"
	"github.com/pymk/pymk/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [task]",
	Short: "Show recent task runs",
	Long:  "Show recent task runs, newest first (status, task, when, duration)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := ""
		if len(args) == 1 {
			task = args[0]
		}
		limit, _ := cmd.Flags().GetInt("limit")

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := history.NewRepository(dbConn)
		runs, err := r.ListRecent(task, limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
			return nil
		}
		for _, run := range runs {
			status := "ok"
			switch {
			case run.DryRun:
				status = "dry-run"
			case run.ExitCode != 0:
				status = fmt.Sprintf("failed(%d)", run.ExitCode)
			}
			when := run.StartedAt
			if ts, err := run.Started(); err == nil {
				when = humanize.Time(ts)
			}
			dur := time.Duration(run.DurationMS) * time.Millisecond
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-15s %-20s %s\n", status, run.Task, when, dur)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
