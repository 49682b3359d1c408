//go:build !windows

package executor

import (
	"io"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// isTerminal reports whether the given file descriptor refers to a terminal.
// Package-level so tests can override it.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// runInteractive starts cmd under a PTY, forwards the caller's stdin into
// the PTY master, and copies the child's output to stdout. While the child
// runs, the caller's terminal (when stdin is one) is put into raw mode so
// keystrokes reach the child unmangled.
func (e *Executor) runInteractive(cmd *exec.Cmd, stdin io.Reader, stdout io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = ptmx.Close() }()

	if f, ok := stdin.(interface{ Fd() uintptr }); ok && isTerminal(f.Fd()) {
		if oldState, rawErr := term.MakeRaw(int(f.Fd())); rawErr == nil {
			defer func() { _ = term.Restore(int(f.Fd()), oldState) }()
		}
	}

	go func() { _, _ = io.Copy(ptmx, stdin) }()
	_, _ = io.Copy(stdout, ptmx)

	return cmd.Wait()
}
