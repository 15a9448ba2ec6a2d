//go:build linux

package console

import "os"

func platformTerminal(*os.File) (painter, screen) {
	return ansiTerminal{}, ansiTerminal{}
}
