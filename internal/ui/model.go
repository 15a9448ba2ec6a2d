package ui

import (
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/theme"
	uistate "github.com/atomicstack/onekey/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

// Model implements the Bubble Tea model for the menu picker.
type Model struct {
	level      *level
	title      string
	chosen     string
	picked     bool
	aborted    bool
	width      int
	height     int
	showFooter bool
}

// NewModel initialises the picker over the menu's entries.
func NewModel(m *menu.Menu, title string, showFooter bool) *Model {
	return &Model{
		level:      uistate.NewLevel(string(m.Preset()), title, m.Entries()),
		title:      title,
		showFooter: showFooter,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}
	return m, nil
}

// Chosen returns the picked key. ok is false when the picker was aborted or
// is still running.
func (m *Model) Chosen() (key string, ok bool) {
	return m.chosen, m.picked
}

// Aborted reports whether the user quit the picker.
func (m *Model) Aborted() bool {
	return m.aborted
}
