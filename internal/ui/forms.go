package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const formHelp = "enter confirm  esc cancel"

// Form collects one free-text reply.
type Form struct {
	question  string
	input     textinput.Model
	done      bool
	cancelled bool
}

// NewForm returns a focused form for question.
func NewForm(question string) *Form {
	input := textinput.New()
	input.Prompt = "> "
	if styles.Filter != nil {
		input.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		input.PlaceholderStyle = *styles.FilterPlaceholder
	}
	input.Focus()
	return &Form{question: strings.TrimSpace(question), input: input}
}

// Init is part of the tea.Model interface.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards keys to the text input until the reply is confirmed or
// cancelled.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			f.done = true
			return f, tea.Quit
		case "esc", "ctrl+c":
			f.cancelled = true
			return f, tea.Quit
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View implements tea.Model.
func (f *Form) View() string {
	if f.done || f.cancelled {
		return ""
	}
	lines := []string{
		styles.Question.Render(f.question),
		"",
		f.input.View(),
		"",
		styles.Footer.Render(formHelp),
	}
	return strings.Join(lines, "\n")
}

// Value returns the reply typed so far, untrimmed.
func (f *Form) Value() string {
	return f.input.Value()
}

// Done reports whether the reply was confirmed.
func (f *Form) Done() bool {
	return f.done
}

// Cancelled reports whether the form was dismissed.
func (f *Form) Cancelled() bool {
	return f.cancelled
}
