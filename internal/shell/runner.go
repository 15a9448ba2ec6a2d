package shell

import (
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// Runner executes invocations synchronously with inherited standard streams.
type Runner struct {
	Interpreter []string
	Dir         string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewRunner returns a runner wired to the process' standard streams. An empty
// interpreter selects the platform default.
func NewRunner(interpreter []string, dir string) *Runner {
	if len(interpreter) == 0 {
		interpreter = DefaultInterpreter()
	}
	return &Runner{
		Interpreter: interpreter,
		Dir:         dir,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// ParseInterpreter splits an interpreter override such as "bash -c". The
// empty string yields the platform default.
func ParseInterpreter(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return DefaultInterpreter(), nil
	}
	words, err := shlex.Split(value)
	if err != nil {
		return nil, errors.Wrapf(err, "parse interpreter %q", value)
	}
	if len(words) == 0 {
		return DefaultInterpreter(), nil
	}
	return words, nil
}

// Command builds the exec.Cmd for an invocation without starting it.
func (r *Runner) Command(inv Invocation) *exec.Cmd {
	var cmd *exec.Cmd
	if inv.IsLine() {
		interpreter := r.Interpreter
		if len(interpreter) == 0 {
			interpreter = DefaultInterpreter()
		}
		cmd = lineCommand(interpreter, inv.Line)
	} else {
		cmd = exec.Command(inv.Name, inv.Args...)
	}
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

// Run executes the invocation and waits for it to exit. Interrupts received
// while the child runs are left to the child, so stopping a foreground server
// with Ctrl+C returns control to the caller instead of killing it.
func (r *Runner) Run(inv Invocation) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	if err := r.Command(inv).Run(); err != nil {
		return errors.Wrapf(err, "run %q", inv.String())
	}
	return nil
}
