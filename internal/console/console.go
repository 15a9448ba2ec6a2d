// Package console prints accent-colored status lines and drives the few
// screen controls the menu needs (clear, window title). The rendering
// mechanism is chosen per platform: console attributes on Windows, ANSI
// escape sequences on Linux and Cygwin-style terminals, plain text anywhere
// else.
package console

import (
	"fmt"
	"io"
	"os"
)

// Level is the accent applied to a reported line.
type Level int

const (
	Info Level = iota
	Success
	Alert
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Success:
		return "success"
	case Alert:
		return "alert"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

const (
	ansiBlue  = "\x1b[34m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
	ansiClear = "\x1b[H\x1b[2J"
)

type painter interface {
	paint(w io.Writer, level Level, message string) error
}

type screen interface {
	clear(w io.Writer) error
	title(w io.Writer, title string) error
}

// Reporter writes status lines to a single output stream.
type Reporter struct {
	out     io.Writer
	painter painter
	screen  screen
}

// New returns a reporter for out using the host platform's color mechanism.
// When colorless is set lines are printed without any accent, while screen
// controls still follow the platform.
func New(out *os.File, colorless bool) *Reporter {
	p, s := platformTerminal(out)
	if colorless {
		p = plainTerminal{}
	}
	return &Reporter{out: out, painter: p, screen: s}
}

// NewANSI returns a reporter that always uses ANSI escape sequences.
func NewANSI(w io.Writer) *Reporter {
	return &Reporter{out: w, painter: ansiTerminal{}, screen: ansiTerminal{}}
}

// NewPlain returns a reporter that prints undecorated lines and ignores
// screen controls.
func NewPlain(w io.Writer) *Reporter {
	return &Reporter{out: w, painter: plainTerminal{}, screen: plainTerminal{}}
}

// Report prints message followed by a newline in the accent for level.
// Write failures are dropped: there is nowhere better to report them.
func (r *Reporter) Report(message string, level Level) {
	_ = r.painter.paint(r.out, level, message)
}

// Print writes text without accent or trailing newline.
func (r *Reporter) Print(text string) {
	_, _ = io.WriteString(r.out, text)
}

// Clear wipes the visible screen.
func (r *Reporter) Clear() {
	_ = r.screen.clear(r.out)
}

// SetTitle changes the console window title.
func (r *Reporter) SetTitle(title string) {
	if title == "" {
		return
	}
	_ = r.screen.title(r.out, title)
}

type ansiTerminal struct{}

func ansiColor(level Level) string {
	switch level {
	case Success:
		return ansiGreen
	case Alert:
		return ansiRed
	default:
		return ansiBlue
	}
}

func (ansiTerminal) paint(w io.Writer, level Level, message string) error {
	_, err := io.WriteString(w, ansiColor(level)+message+ansiReset+"\n")
	return err
}

func (ansiTerminal) clear(w io.Writer) error {
	_, err := io.WriteString(w, ansiClear)
	return err
}

func (ansiTerminal) title(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\x1b]0;%s\a", title)
	return err
}

type plainTerminal struct{}

func (plainTerminal) paint(w io.Writer, _ Level, message string) error {
	_, err := io.WriteString(w, message+"\n")
	return err
}

func (plainTerminal) clear(io.Writer) error { return nil }

func (plainTerminal) title(io.Writer, string) error { return nil }
