package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pymk/pymk/internal/db"
	"github.com/pymk/pymk/internal/executor"
	"github.com/pymk/pymk/internal/history"
	"github.com/pymk/pymk/internal/logging"
	"github.com/pymk/pymk/internal/tasks"
	"github.com/pymk/pymk/internal/utils"
)

// execFactory builds the Runner used to execute task commands. Package
// level so tests can inject fakes.
var execFactory = func(dry, verbose bool, shell string, interactive bool) executor.Runner {
	return &executor.Executor{DryRun: dry, Verbose: verbose, Shell: shell, Interactive: interactive}
}

type runOptions struct {
	dryRun     bool
	verbose    bool
	shell      string
	repository string
	yes        bool
}

func optionsFromFlags() runOptions {
	shell := flagShell
	if shell == "" {
		shell = cfg.Shell
	}
	return runOptions{
		dryRun:     flagDryRun,
		verbose:    flagVerbose,
		shell:      shell,
		repository: flagRepository,
		yes:        flagYes,
	}
}

// runTask resolves name against the built-in registry and executes the
// resulting task sequence: dependencies first, commands in declared order,
// aborting at the first failure. The invocation is recorded in the run
// history (best effort).
func runTask(name string, overrides map[string]string, opts runOptions) error {
	logger := logging.GetLogger("dispatch")
	reg := tasks.Builtin()

	if name == "help" {
		printListing(os.Stdout)
		return nil
	}
	if _, ok := reg.Get(name); !ok {
		msg := fmt.Sprintf("unknown task: %s", name)
		if sugg := reg.Suggest(name, 3); len(sugg) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(sugg, ", "))
		}
		return errors.New(msg)
	}

	order, err := reg.Resolve(name)
	if err != nil {
		return err
	}
	vars := effectiveVars(opts, overrides)

	var repo *history.Repository
	dbConn, err := db.InitDB()
	if err != nil {
		logger.Warn().Err(err).Msg("run history disabled")
	} else {
		defer func() { _ = dbConn.Close() }()
		repo = history.NewRepository(dbConn)
	}

	logger.Debug().Str("task", name).Bool("dry_run", opts.dryRun).Msg("task started")
	start := time.Now()
	runErr := executeOrder(order, vars, opts)

	exitCode := 0
	if runErr != nil {
		exitCode = 1
		var exitErr *executor.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.Code
		}
	}
	logger.Debug().Str("task", name).Int("exit_code", exitCode).Dur("duration", time.Since(start)).Msg("task finished")

	if repo != nil {
		run := history.Run{
			Task:       name,
			DurationMS: time.Since(start).Milliseconds(),
			ExitCode:   exitCode,
			DryRun:     opts.dryRun,
		}
		if _, err := repo.Record(run); err != nil {
			logger.Warn().Err(err).Msg("record run")
		}
	}
	return runErr
}

func executeOrder(order []tasks.Task, vars map[string]string, opts runOptions) error {
	ctx := context.Background()
	for _, t := range order {
		if t.Confirm && !opts.yes && !opts.dryRun {
			prompt := fmt.Sprintf("Run '%s' against repository %q?", t.Name, vars["PYPI_REPOSITORY"])
			if !utils.Confirm(os.Stdin, os.Stdout, prompt) {
				fmt.Println("aborted")
				return nil
			}
		}
		e := execFactory(opts.dryRun, opts.verbose, opts.shell, t.Interactive)
		for _, raw := range t.Commands {
			command := tasks.Expand(raw, vars)
			fmt.Printf("-> %s\n", command)
			if err := e.Execute(ctx, command, "", os.Stdin, os.Stdout, os.Stderr); err != nil {
				return err
			}
		}
	}
	return nil
}

// effectiveVars merges the variable sources for command expansion.
// Precedence, lowest to highest: built-in defaults, config file,
// environment, --repository flag, trailing NAME=VALUE overrides.
func effectiveVars(opts runOptions, overrides map[string]string) map[string]string {
	vars := map[string]string{
		"PYPI_REPOSITORY": tasks.DefaultRepository,
		"PROJECT":         tasks.DefaultProject,
	}
	if cfg.Repository != "" {
		vars["PYPI_REPOSITORY"] = cfg.Repository
	}
	if cfg.Project != "" {
		vars["PROJECT"] = cfg.Project
	}
	if v := os.Getenv("PYPI_REPOSITORY"); v != "" {
		vars["PYPI_REPOSITORY"] = v
	}
	if v := os.Getenv("PROJECT"); v != "" {
		vars["PROJECT"] = v
	}
	if opts.repository != "" {
		vars["PYPI_REPOSITORY"] = opts.repository
	}
	for k, v := range overrides {
		vars[k] = v
	}
	return vars
}
