package ui

import (
	"unicode"

	"github.com/atomicstack/onekey/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	current := m.level
	switch msg.String() {
	case "ctrl+c":
		m.aborted = true
		events.UI.Abort()
		return tea.Quit
	case "esc", "ctrl+u":
		if current.ClearFilter() {
			events.Filter.Cleared()
		}
		return nil
	case "up", "ctrl+p":
		if current.MoveCursor(-1) {
			events.UI.Cursor(current.Cursor)
		}
		return nil
	case "down", "ctrl+n", "tab":
		if current.MoveCursor(1) {
			events.UI.Cursor(current.Cursor)
		}
		return nil
	case "enter":
		if entry, ok := current.Current(); ok {
			return m.choose(entry.Key)
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if current.DeleteFilterRuneBackward() {
			events.Filter.Changed(current.Filter, len(current.Items))
		}
		return nil
	case tea.KeySpace:
		if current.Filter != "" && current.AppendFilter(" ") {
			events.Filter.Changed(current.Filter, len(current.Items))
		}
		return nil
	case tea.KeyRunes:
		return m.handleRunes(msg)
	}
	return nil
}

// handleRunes treats a lone rune matching an entry key as a selection while
// no filter is active; anything else extends the filter.
func (m *Model) handleRunes(msg tea.KeyMsg) tea.Cmd {
	if msg.Alt || len(msg.Runes) == 0 {
		return nil
	}
	for _, r := range msg.Runes {
		if unicode.IsControl(r) {
			return nil
		}
	}
	current := m.level
	if current.Filter == "" && len(msg.Runes) == 1 {
		if entry, ok := current.FindKey(string(msg.Runes)); ok {
			return m.choose(entry.Key)
		}
	}
	if current.AppendFilter(string(msg.Runes)) {
		events.Filter.Changed(current.Filter, len(current.Items))
	}
	return nil
}

func (m *Model) choose(key string) tea.Cmd {
	m.chosen = key
	m.picked = true
	events.UI.Choose(key)
	return tea.Quit
}
