package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	footerHint        = "↑/↓ move  enter select  key jump  esc clear  ctrl+c quit"
	filterPrompt      = "filter> "
	filterHint        = "type to filter"
	itemIndicator     = "  "
	selectedIndicator = "▌ "
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.picked || m.aborted {
		return ""
	}
	lines := make([]string, 0, len(m.level.Items)+5)
	if m.title != "" {
		lines = append(lines, m.render(styledLine{text: m.title, style: styles.Header}))
	}
	if len(m.level.Items) == 0 {
		lines = append(lines, m.render(styledLine{text: fmt.Sprintf("No matches for %q", m.level.Filter), style: styles.Info}))
	}
	for i, entry := range m.level.Items {
		lines = append(lines, m.renderItem(i, entry.Key, entry.Label))
	}
	lines = append(lines, "", m.filterLine())
	if m.showFooter {
		lines = append(lines, m.render(styledLine{text: footerHint, style: styles.Footer}))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItem(idx int, key, label string) string {
	text := m.truncate(fmt.Sprintf("%s  %s", key, label), len(itemIndicator))
	if idx == m.level.Cursor {
		return styles.SelectedItemIndicator.Render(selectedIndicator) + styles.SelectedItem.Render(text)
	}
	return styles.ItemIndicator.Render(itemIndicator) + styles.Item.Render(text)
}

func (m *Model) filterLine() string {
	prompt := styles.FilterPrompt.Render(filterPrompt)
	if m.level.Filter == "" {
		return prompt + styles.FilterPlaceholder.Render(filterHint)
	}
	return prompt + styles.Filter.Render(m.truncate(m.level.Filter, len(filterPrompt)))
}

func (m *Model) render(line styledLine) string {
	text := m.truncate(line.text, 0)
	if line.style == nil {
		return text
	}
	return line.style.Render(text)
}

// truncate shortens text so it fits the viewport after reserved columns.
func (m *Model) truncate(text string, reserved int) string {
	if m.width <= 0 {
		return text
	}
	limit := m.width - reserved
	if limit <= 0 {
		return ""
	}
	return ansi.Truncate(text, limit, "…")
}
