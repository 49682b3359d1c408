//go:build windows

package executor

import (
	"io"
	"os/exec"
)

// runInteractive on Windows falls back to a plain run with inherited
// streams; ConPTY support is not wired up.
func (e *Executor) runInteractive(cmd *exec.Cmd, stdin io.Reader, stdout io.Writer) error {
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stdout
	return cmd.Run()
}
