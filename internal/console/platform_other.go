//go:build !linux && !windows

package console

import "os"

// Hosts without a known color mechanism get plain output.
func platformTerminal(*os.File) (painter, screen) {
	return plainTerminal{}, plainTerminal{}
}
