//go:build !windows

package shell

import "os/exec"

// DefaultInterpreter is the command interpreter used for raw command lines.
func DefaultInterpreter() []string {
	return []string{"sh", "-c"}
}

func lineCommand(interpreter []string, line string) *exec.Cmd {
	args := make([]string, 0, len(interpreter))
	args = append(args, interpreter[1:]...)
	args = append(args, line)
	return exec.Command(interpreter[0], args...)
}
