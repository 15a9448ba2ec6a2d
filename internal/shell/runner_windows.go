//go:build windows

package shell

import (
	"os/exec"
	"strings"
	"syscall"
)

// DefaultInterpreter is the command interpreter used for raw command lines.
func DefaultInterpreter() []string {
	return []string{"cmd", "/C"}
}

// cmd.exe parses its own command line, so the line is passed through
// untouched instead of going through argument quoting.
func lineCommand(interpreter []string, line string) *exec.Cmd {
	cmd := exec.Command(interpreter[0])
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: strings.Join(interpreter, " ") + " " + line,
	}
	return cmd
}
