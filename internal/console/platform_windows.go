//go:build windows

package console

import (
	"io"
	"os"
	"os/exec"
	"unsafe"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

const (
	fgBlue      uint16 = 0x01
	fgGreen     uint16 = 0x02
	fgRed       uint16 = 0x04
	fgIntensity uint16 = 0x08

	defaultAttribute = fgRed | fgGreen | fgBlue
)

var (
	kernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTextAttribute = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleTitle         = kernel32.NewProc("SetConsoleTitleW")
)

func platformTerminal(out *os.File) (painter, screen) {
	if isatty.IsCygwinTerminal(out.Fd()) {
		return ansiTerminal{}, ansiTerminal{}
	}
	handle := windows.Handle(out.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// redirected output has no console attributes to change
		return plainTerminal{}, consoleScreen{}
	}
	return attributePainter{set: func(attr uint16) error {
		return setTextAttribute(handle, attr)
	}}, consoleScreen{}
}

func setTextAttribute(handle windows.Handle, attr uint16) error {
	r1, _, err := procSetConsoleTextAttribute.Call(uintptr(handle), uintptr(attr))
	if r1 == 0 {
		return err
	}
	return nil
}

func attributeFor(level Level) uint16 {
	switch level {
	case Success:
		return fgGreen | fgIntensity
	case Alert:
		return fgRed | fgIntensity
	default:
		return fgBlue | fgIntensity
	}
}

// attributePainter holds the console foreground attribute for the duration
// of one line and always puts the default back before returning.
type attributePainter struct {
	set func(uint16) error
}

func (p attributePainter) paint(w io.Writer, level Level, message string) error {
	if err := p.set(attributeFor(level)); err != nil {
		_, werr := io.WriteString(w, message+"\n")
		return werr
	}
	defer p.set(defaultAttribute)
	_, err := io.WriteString(w, message+"\n")
	return err
}

type consoleScreen struct{}

func (consoleScreen) clear(w io.Writer) error {
	cmd := exec.Command("cmd", "/C", "cls")
	cmd.Stdout = w
	return cmd.Run()
}

func (consoleScreen) title(_ io.Writer, title string) error {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	r1, _, err := procSetConsoleTitle.Call(uintptr(unsafe.Pointer(ptr)))
	if r1 == 0 {
		return err
	}
	return nil
}
