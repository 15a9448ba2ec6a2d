package shell

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Mode selects how user-supplied text reaches an external command.
type Mode string

const (
	// ModeShell splices the text, unescaped, into a command line for the
	// interpreter. This is the historical behaviour.
	ModeShell Mode = "shell"
	// ModeExec splits the text into words and executes the command directly
	// with an argument vector, so nothing is interpreted by a shell.
	ModeExec Mode = "exec"
)

// Modes lists the accepted invoke modes in display order.
func Modes() []Mode {
	return []Mode{ModeShell, ModeExec}
}

// ParseMode resolves a mode name. The empty string maps to ModeShell.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeShell:
		return ModeShell, nil
	case ModeExec:
		return ModeExec, nil
	}
	return "", fmt.Errorf("unknown invoke mode %q (want one of %s)", name, joinModes())
}

func joinModes() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// Invocation describes one external command. Either Line is set, in which
// case the command interpreter receives it verbatim, or Name (plus Args) is
// executed directly.
type Invocation struct {
	Line string
	Name string
	Args []string
}

// Line returns an invocation handed to the command interpreter as-is.
func Line(line string) Invocation {
	return Invocation{Line: line}
}

// Command returns an invocation executed with an argument vector.
func Command(name string, args ...string) Invocation {
	return Invocation{Name: name, Args: append([]string(nil), args...)}
}

// IsLine reports whether the invocation goes through the interpreter.
func (i Invocation) IsLine() bool {
	return i.Name == ""
}

// String renders the command line the invocation stands for.
func (i Invocation) String() string {
	if i.IsLine() {
		return i.Line
	}
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}

// Splice appends user text to a command prefix. In ModeShell the text lands
// unescaped after a single space, exactly as typed. In ModeExec the text is
// split with POSIX shell word rules into extra arguments; text that cannot be
// split (for example an unbalanced quote) becomes one literal argument.
func Splice(mode Mode, prefix []string, reply string) Invocation {
	if len(prefix) == 0 {
		return Line(reply)
	}
	if mode != ModeExec {
		return Line(strings.Join(prefix, " ") + " " + reply)
	}
	words, err := shlex.Split(reply)
	if err != nil {
		words = []string{reply}
	}
	args := make([]string, 0, len(prefix)-1+len(words))
	args = append(args, prefix[1:]...)
	args = append(args, words...)
	return Command(prefix[0], args...)
}
