//go:build !windows

package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunnerRunsLineThroughInterpreter(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Interpreter: []string{"sh", "-c"}, Stdout: &out, Stderr: &out}
	if err := r.Run(Line("printf 'a b' && printf ' c'")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "a b c" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunnerRunsArgvWithoutShell(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Interpreter: []string{"sh", "-c"}, Stdout: &out}
	if err := r.Run(Command("printf", "%s", "$HOME && x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "$HOME && x" {
		t.Fatalf("argument was interpreted: %q", out.String())
	}
}

func TestRunnerUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := &Runner{Interpreter: []string{"sh", "-c"}, Dir: dir, Stdout: &out}
	if err := r.Run(Line("pwd")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	if got != want {
		t.Fatalf("child ran in %q, want %q", got, want)
	}
}

func TestRunnerReportsFailure(t *testing.T) {
	r := &Runner{Interpreter: []string{"sh", "-c"}, Stderr: os.Stderr}
	err := r.Run(Line("exit 3"))
	if err == nil {
		t.Fatalf("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), `"exit 3"`) {
		t.Fatalf("expected command line in error, got %v", err)
	}
}
