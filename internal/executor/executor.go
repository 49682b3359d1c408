// Package executor provides command execution functionality.
package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Executor runs shell commands in an OS-aware way.
type Executor struct {
	DryRun  bool
	Verbose bool
	Shell   string // optional override (e.g., "zsh", "pwsh")
	// Interactive runs commands under a PTY so watch-style tools that
	// expect a terminal behave normally.
	Interactive bool
}

// Runner is an interface for executing commands. It allows tests to inject
// fake implementations without running real shell commands.
type Runner interface {
	Execute(ctx context.Context, command string, cwd string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error
}

// New returns a Runner backed by the real Executor implementation.
func New(dry, verbose bool) Runner {
	return &Executor{DryRun: dry, Verbose: verbose}
}

// ExitError reports a command that ran and exited non-zero. The code is
// preserved so callers can mirror it as the process exit status.
type ExitError struct {
	Code    int
	Command string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.Code, e.Command)
}

// Execute runs the provided command string using an OS-appropriate shell
// invocation (`bash -c` on Unix, `cmd /C` on Windows, or the override
// shell). The command is sanitized and validated first. Output streams to
// the provided writers; a non-zero exit is returned as *ExitError and the
// remaining commands of the invocation must not run.
func (e *Executor) Execute(ctx context.Context, command string, cwd string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	command, err := validateAndSanitize(command)
	if err != nil {
		return err
	}

	if e.DryRun {
		if e.Verbose {
			_, _ = fmt.Fprintf(stdout, "dry-run: %s\n", command)
		}
		return nil
	}

	shell, args := shellInvocation(command, e.Shell)
	if err := validateShellAndArgs(shell, args); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, shell, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}

	if e.Interactive {
		err = e.runInteractive(cmd, stdin, stdout)
	} else {
		cmd.Stdin = stdin
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		err = cmd.Run()
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExitError{Code: exitErr.ExitCode(), Command: command}
		}
		return fmt.Errorf("command failed: %w (shell=%s args=%q)", err, shell, args)
	}
	return nil
}

// CommandProgram returns the program name a command string invokes: its
// first token after quote-aware splitting.
func CommandProgram(command string) (string, error) {
	toks, err := shellquote.Split(command)
	if err != nil {
		toks = strings.Fields(command)
	}
	if len(toks) == 0 {
		return "", fmt.Errorf("empty command")
	}
	return toks[0], nil
}

// sanitizeCommand normalizes common unicode characters that often get
// inserted by editors (smart quotes, NBSP, zero-width spaces) and drops
// embedded NUL runes.
func sanitizeCommand(s string) string {
	r := strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", "\"", // left double quote
		"”", "\"", // right double quote
		" ", " ", // NO-BREAK SPACE
		"​", "", // zero width space
		"‎", "", // left-to-right mark
		"‏", "", // right-to-left mark
	)
	rp := r.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, rp)
}

func validateAndSanitize(command string) (string, error) {
	command = sanitizeCommand(command)
	if strings.Contains(command, "\n") {
		return "", fmt.Errorf("invalid command: contains newline characters; each command must be a single line")
	}
	if strings.IndexFunc(command, func(r rune) bool { return r == 0 || (r < 32 && r != '\t') || r == 0x7f }) != -1 {
		return "", fmt.Errorf("invalid command: contains control characters; remove non-printable characters")
	}
	if strings.TrimSpace(command) == "" {
		return "", fmt.Errorf("invalid command: empty")
	}
	return command, nil
}

// shellInvocation returns the shell executable and arguments for the
// platform. Optional override lets callers request an alternate shell.
func shellInvocation(command string, overrideShell string) (string, []string) {
	if overrideShell != "" {
		switch overrideShell {
		case "pwsh", "powershell":
			return "pwsh", []string{"-Command", command}
		default:
			return overrideShell, []string{"-c", command}
		}
	}
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "bash", []string{"-c", command}
}

func validateShellAndArgs(shell string, args []string) error {
	if _, err := exec.LookPath(shell); err != nil {
		return fmt.Errorf("shell not found in PATH: %s", shell)
	}
	for i, a := range args {
		if strings.IndexFunc(a, func(r rune) bool { return r == 0 || (r < 32 && r != '\t') || r == 0x7f }) != -1 {
			return fmt.Errorf("invalid shell arg[%d]: contains control characters", i)
		}
	}
	return nil
}
