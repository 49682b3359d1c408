package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pymk/pymk/internal/config"
	"github.com/pymk/pymk/internal/executor"
)

// fakeRunner implements the executor.Runner interface for tests.
type fakeRunner struct {
	commands    []string
	interactive []bool
	failOn      string
	failCode    int
}

func (f *fakeRunner) Execute(_ context.Context, command, _ string, _ io.Reader, _ io.Writer, _ io.Writer) error {
	f.commands = append(f.commands, command)
	if f.failOn != "" && strings.Contains(command, f.failOn) {
		return &executor.ExitError{Code: f.failCode, Command: command}
	}
	return nil
}

// withFakeRunner swaps execFactory for one returning f and restores it
// when the test finishes.
func withFakeRunner(t *testing.T) *fakeRunner {
	t.Helper()
	f := &fakeRunner{}
	orig := execFactory
	execFactory = func(_, _ bool, _ string, interactive bool) executor.Runner {
		f.interactive = append(f.interactive, interactive)
		return f
	}
	t.Cleanup(func() { execFactory = orig })
	return f
}

// setupTempHome isolates the data directory and neutralizes variable
// sources that would leak between tests.
func setupTempHome(t *testing.T) string {
	t.Helper()
	d := t.TempDir()
	t.Setenv("PYMK_HOME", d)
	t.Setenv("PYPI_REPOSITORY", "")
	t.Setenv("PROJECT", "")
	resetFlags(t)
	return d
}

func resetFlags(t *testing.T) {
	t.Helper()
	flagDryRun = false
	flagVerbose = false
	flagShell = ""
	flagRepository = ""
	flagYes = false
	cfg = config.Config{}
}

func captureOutput(f func()) (string, string) {
	oldOut := os.Stdout
	oldErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outC <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errC <- buf.String()
	}()

	f()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr

	out := <-outC
	err := <-errC
	return out, err
}

// cleanSequence is every command `clean` runs, in order.
var cleanSequence = []string{
	"rm -rf .tox/",
	"rm -fr build/",
	"rm -fr dist/",
	"rm -fr .eggs/",
	"find . -name '*.egg-info' -exec rm -fr {} +",
	"find . -name '*.egg' -exec rm -f {} +",
	"find . -name '*.pyc' -exec rm -f {} +",
	"find . -name '*.pyo' -exec rm -f {} +",
	"find . -name '*~' -exec rm -f {} +",
	"find . -name '__pycache__' -exec rm -fr {} +",
}

func sameCommands(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
