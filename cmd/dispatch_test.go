package cmd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/pymk/pymk/internal/db"
	"github.com/pymk/pymk/internal/executor"
	"github.com/pymk/pymk/internal/history"
)

func TestCleanRunsAllThreeCleansInOrder(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	var runErr error
	captureOutput(func() {
		runErr = runTask("clean", nil, runOptions{})
	})
	if runErr != nil {
		t.Fatalf("runTask: %v", runErr)
	}
	if !sameCommands(fake.commands, cleanSequence) {
		t.Fatalf("unexpected command order:\ngot  %v\nwant %v", fake.commands, cleanSequence)
	}
}

func TestFirstFailureAbortsSequence(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)
	fake.failOn = "rm -fr dist/"
	fake.failCode = 2

	var runErr error
	captureOutput(func() {
		runErr = runTask("clean", nil, runOptions{})
	})
	var exitErr *executor.ExitError
	if !errors.As(runErr, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("expected exit code 2, got %v", runErr)
	}
	// Nothing after the failing command may run.
	want := cleanSequence[:3]
	if !sameCommands(fake.commands, want) {
		t.Fatalf("expected abort after failure:\ngot  %v\nwant %v", fake.commands, want)
	}
}

func TestReleaseRunsCleanFullyBeforePackaging(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	var runErr error
	captureOutput(func() {
		runErr = runTask("release", nil, runOptions{yes: true})
	})
	if runErr != nil {
		t.Fatalf("runTask: %v", runErr)
	}
	want := append(append([]string{}, cleanSequence...),
		"python setup.py sdist",
		"python setup.py bdist_wheel",
		"twine upload -r testpypi dist/*",
	)
	if !sameCommands(fake.commands, want) {
		t.Fatalf("unexpected release order:\ngot  %v\nwant %v", fake.commands, want)
	}
}

func TestReleaseCleanFailureStopsPackaging(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)
	fake.failOn = ".tox"
	fake.failCode = 1

	var runErr error
	captureOutput(func() {
		runErr = runTask("release", nil, runOptions{yes: true})
	})
	if runErr == nil {
		t.Fatalf("expected failure")
	}
	for _, c := range fake.commands {
		if strings.Contains(c, "twine") || strings.Contains(c, "setup.py") {
			t.Fatalf("packaging command ran after clean failed: %q", c)
		}
	}
}

func TestRepositoryDefaultsToTestIndex(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("release", nil, runOptions{yes: true}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	last := fake.commands[len(fake.commands)-1]
	if last != "twine upload -r testpypi dist/*" {
		t.Fatalf("expected default test index, got %q", last)
	}
}

func TestRepositoryOverrideVariable(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("release", map[string]string{"PYPI_REPOSITORY": "pypi"}, runOptions{yes: true}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	last := fake.commands[len(fake.commands)-1]
	if last != "twine upload -r pypi dist/*" {
		t.Fatalf("expected override used verbatim, got %q", last)
	}
}

func TestRepositoryEnvironment(t *testing.T) {
	setupTempHome(t)
	t.Setenv("PYPI_REPOSITORY", "internal-index")
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("release", nil, runOptions{yes: true}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	last := fake.commands[len(fake.commands)-1]
	if !strings.Contains(last, "-r internal-index") {
		t.Fatalf("expected environment repository, got %q", last)
	}
}

func TestRepositoryFlagBeatsEnvironment(t *testing.T) {
	setupTempHome(t)
	t.Setenv("PYPI_REPOSITORY", "internal-index")
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("release", nil, runOptions{yes: true, repository: "flag-index"}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	last := fake.commands[len(fake.commands)-1]
	if !strings.Contains(last, "-r flag-index") {
		t.Fatalf("expected flag repository, got %q", last)
	}
}

func TestReleaseConfirmDeclined(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	oldStdin := os.Stdin
	rR, rW, _ := os.Pipe()
	_, _ = rW.Write([]byte("n\n"))
	_ = rW.Close()
	os.Stdin = rR
	defer func() { os.Stdin = oldStdin }()

	var runErr error
	out, _ := captureOutput(func() {
		runErr = runTask("release", nil, runOptions{})
	})
	if runErr != nil {
		t.Fatalf("runTask: %v", runErr)
	}
	if !strings.Contains(out, "aborted") {
		t.Fatalf("expected 'aborted', got %q", out)
	}
	// clean already ran; nothing from release itself may have.
	if !sameCommands(fake.commands, cleanSequence) {
		t.Fatalf("expected only clean commands, got %v", fake.commands)
	}
}

func TestProjectVariableExpandsInDocs(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("docs", map[string]string{"PROJECT": "demo"}, runOptions{}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	found := false
	for _, c := range fake.commands {
		if c == "sphinx-apidoc -o docs/ demo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected expanded project name, got %v", fake.commands)
	}
}

func TestServedocsRunsInteractive(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("servedocs", nil, runOptions{}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	if len(fake.interactive) == 0 || !fake.interactive[len(fake.interactive)-1] {
		t.Fatalf("expected servedocs to request an interactive runner, got %v", fake.interactive)
	}
}

func TestUnknownTaskSuggests(t *testing.T) {
	setupTempHome(t)
	withFakeRunner(t)

	var runErr error
	captureOutput(func() {
		runErr = runTask("relase", nil, runOptions{})
	})
	if runErr == nil {
		t.Fatalf("expected error for unknown task")
	}
	if !strings.Contains(runErr.Error(), "did you mean") || !strings.Contains(runErr.Error(), "release") {
		t.Fatalf("expected suggestion, got %v", runErr)
	}
}

func TestHelpTaskPrintsListing(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)

	out, _ := captureOutput(func() {
		if err := runTask("help", nil, runOptions{}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})
	if !strings.Contains(out, "clean-build") {
		t.Fatalf("expected listing, got %q", out)
	}
	if len(fake.commands) != 0 {
		t.Fatalf("help must not execute commands, got %v", fake.commands)
	}
}

func TestRunRecordedInHistory(t *testing.T) {
	setupTempHome(t)
	withFakeRunner(t)

	captureOutput(func() {
		if err := runTask("lint", nil, runOptions{}); err != nil {
			t.Fatalf("runTask: %v", err)
		}
	})

	conn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = conn.Close() }()
	runs, err := history.NewRepository(conn).ListRecent("lint", 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(runs) != 1 || runs[0].ExitCode != 0 {
		t.Fatalf("expected one successful lint run, got %+v", runs)
	}
}

func TestFailureExitCodeRecordedInHistory(t *testing.T) {
	setupTempHome(t)
	fake := withFakeRunner(t)
	fake.failOn = "tox"
	fake.failCode = 3

	captureOutput(func() {
		_ = runTask("test-all", nil, runOptions{})
	})

	conn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = conn.Close() }()
	runs, err := history.NewRepository(conn).ListRecent("test-all", 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(runs) != 1 || runs[0].ExitCode != 3 {
		t.Fatalf("expected exit code 3 recorded, got %+v", runs)
	}
}
