// Package prompt reads menu selections and free-text replies one line at a
// time from a shared input stream.
package prompt

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/atomicstack/onekey/internal/console"
	"github.com/atomicstack/onekey/internal/menu"
)

// ErrAborted is returned when the user backs out of an interactive prompt.
var ErrAborted = errors.New("prompt aborted")

const (
	menuHeader     = "-----------------Choose a number and press Enter-----------------"
	menuFooter     = "-----------------------------------------------------------------"
	selectQuestion = "Enter the number: "
)

// Output is where prompts and menu lines are written.
type Output interface {
	Report(message string, level console.Level)
	Print(text string)
}

// Line is the default prompter: it prints the menu as colored text and reads
// replies line by line.
type Line struct {
	reader *bufio.Reader
	out    Output
}

// NewLine wraps in. The buffered reader is kept for the lifetime of the
// prompter so input typed ahead is never dropped between reads.
func NewLine(in io.Reader, out Output) *Line {
	return &Line{reader: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its line terminator. A final line
// without a terminator is returned as-is; io.EOF is returned once nothing is
// left.
func (l *Line) ReadLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Select prints the menu framed by the header and footer lines, then reads
// the raw selection token.
func (l *Line) Select(m *menu.Menu) (string, error) {
	l.out.Report(menuHeader, console.Info)
	for _, e := range m.Entries() {
		l.out.Report(e.Key+"."+e.Label, console.Success)
	}
	l.out.Report(menuFooter, console.Info)
	l.out.Print(selectQuestion)
	return l.ReadLine()
}

// Ask prints question and reads the reply verbatim.
func (l *Line) Ask(question string) (string, error) {
	l.out.Print(question)
	return l.ReadLine()
}
