package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pymk/pymk/internal/config"
	"github.com/pymk/pymk/internal/executor"
	"github.com/pymk/pymk/internal/logging"
	"github.com/pymk/pymk/internal/tasks"
)

var (
	flagDryRun     bool
	flagVerbose    bool
	flagShell      string
	flagRepository string
	flagYes        bool
)

// cfg holds the optional file configuration, loaded once before any
// command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "pymk [task] [NAME=VALUE...]",
	Short: "pymk runs the project's development workflow tasks",
	Long: "pymk is a task runner for Python project workflows: cleaning\n" +
		"artifacts, running tox environments, building documentation, and\n" +
		"packaging releases. Invoke it with a task name to run that task,\n" +
		"or with no arguments to see the task listing.",
	SilenceUsage: true,
	Args:         cobra.ArbitraryArgs,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Setup(flagVerbose || cfg.Verbose)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			printListing(cmd.OutOrStdout())
			return nil
		}
		vars, rest, err := tasks.ParseOverrides(args)
		if err != nil {
			return err
		}
		if len(rest) != 1 {
			return fmt.Errorf("expected one task name, got %v", rest)
		}
		return runTask(rest[0], vars, optionsFromFlags())
	},
}

// printListing writes the default help action output: the sorted,
// two-column task listing.
func printListing(w io.Writer) {
	fmt.Fprintln(w, "Tasks:")
	fmt.Fprint(w, tasks.Builtin().Listing())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pymk <task> [NAME=VALUE...]'. See 'pymk --help' for management commands.")
}

// Execute executes the root command, mirroring a failing task command's
// exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *executor.ExitError
		if errors.As(err, &exitErr) && exitErr.Code != 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDryRun, "dry-run", false, "Print commands without executing them")
	pf.BoolVar(&flagVerbose, "verbose", false, "Verbose output (prints dry-run messages, debug logs)")
	pf.StringVar(&flagShell, "shell", "", "Shell used to run commands (default bash, cmd on Windows)")
	pf.StringVar(&flagRepository, "repository", "", "Package index for release uploads (default testpypi)")
	pf.BoolVar(&flagYes, "yes", false, "Skip confirmation prompts")

	// `pymk help` is the default action from the task table, not cobra's
	// command help. `pymk help <command>` still reaches cobra's.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help [command]",
		Short: "Show the task listing, or help for a command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printListing(cmd.OutOrStdout())
				return nil
			}
			target, _, err := rootCmd.Find(args)
			if err != nil || target == rootCmd {
				return fmt.Errorf("unknown help topic: %v", args)
			}
			return target.Help()
		},
	})
}
