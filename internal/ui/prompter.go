package ui

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/atomicstack/onekey/internal/logging/events"
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompter runs the picker and form as Bubble Tea programs.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	title      string
	showFooter bool
	run        func(tea.Model) (tea.Model, error)
}

// NewPrompter returns a prompter reading keys from in and drawing on out.
func NewPrompter(in io.Reader, out io.Writer, title string, showFooter bool) *Prompter {
	p := &Prompter{in: in, out: out, title: title, showFooter: showFooter}
	p.run = p.program
	return p
}

// Available reports whether both standard input and output are terminals,
// which the picker needs for raw key input.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (p *Prompter) program(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
}

// Select shows the picker and returns the chosen key.
func (p *Prompter) Select(m *menu.Menu) (string, error) {
	model := NewModel(m, p.title, p.showFooter)
	if f, ok := p.out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			model.width, model.height = w, h
		}
	}
	events.UI.Open(string(m.Preset()), model.width, model.height)
	final, err := p.run(model)
	if err != nil {
		return "", errors.Wrap(err, "run picker")
	}
	picked, ok := final.(*Model)
	if !ok {
		return "", errors.Errorf("unexpected picker model %T", final)
	}
	key, chosen := picked.Chosen()
	if !chosen {
		return "", prompt.ErrAborted
	}
	return key, nil
}

// Ask shows a text form and returns the reply verbatim.
func (p *Prompter) Ask(question string) (string, error) {
	final, err := p.run(NewForm(question))
	if err != nil {
		return "", errors.Wrap(err, "run form")
	}
	form, ok := final.(*Form)
	if !ok {
		return "", errors.Errorf("unexpected form model %T", final)
	}
	if !form.Done() {
		return "", prompt.ErrAborted
	}
	return form.Value(), nil
}
