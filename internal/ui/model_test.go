package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/onekey/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func fullMenu(t *testing.T) *menu.Menu {
	t.Helper()
	m, err := menu.ForPreset(menu.PresetFull)
	if err != nil {
		t.Fatalf("ForPreset: %v", err)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeyPressChoosesEntry(t *testing.T) {
	model := NewModel(fullMenu(t), "onekey", false)
	h := NewHarness(model)
	h.Send(runes("3"))
	key, ok := model.Chosen()
	if !ok || key != "3" {
		t.Fatalf("expected key 3 to be chosen, got %q (%v)", key, ok)
	}
	if !h.Quit() {
		t.Fatalf("expected picker to quit after a choice")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after choice, got %q", h.View())
	}
}

func TestModelUnknownRuneStartsFilter(t *testing.T) {
	model := NewModel(fullMenu(t), "onekey", false)
	h := NewHarness(model)
	h.Send(runes("github"))
	if _, ok := model.Chosen(); ok {
		t.Fatalf("filter text should not choose an entry")
	}
	if model.level.Filter != "github" {
		t.Fatalf("expected filter github, got %q", model.level.Filter)
	}
	if len(model.level.Items) != 1 || model.level.Items[0].Key != "5" {
		t.Fatalf("expected only key 5 to match, got %+v", model.level.Items)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if key, ok := model.Chosen(); !ok || key != "5" {
		t.Fatalf("enter should choose filtered entry, got %q (%v)", key, ok)
	}
}

func TestModelDigitsExtendActiveFilter(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(runes("g"))
	h.Send(runes("1"))
	if _, ok := model.Chosen(); ok {
		t.Fatalf("digit typed into an active filter should not choose")
	}
	if model.level.Filter != "g1" {
		t.Fatalf("expected filter g1, got %q", model.level.Filter)
	}
}

func TestModelCursorAndEnter(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if key, ok := model.Chosen(); !ok || key != "1" {
		t.Fatalf("expected key 1, got %q (%v)", key, ok)
	}
}

func TestModelCursorWraps(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if key, _ := model.Chosen(); key != "5" {
		t.Fatalf("expected cursor to wrap to key 5, got %q", key)
	}
}

func TestModelEscClearsFilter(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(runes("zzz"))
	if !strings.Contains(h.View(), `No matches for "zzz"`) {
		t.Fatalf("expected no-match line, got %q", h.View())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if model.level.Filter != "" || len(model.level.Items) != 6 {
		t.Fatalf("esc should restore all entries, got filter %q and %d items", model.level.Filter, len(model.level.Items))
	}
	if model.Aborted() {
		t.Fatalf("esc must not abort the picker")
	}
}

func TestModelCtrlCAborts(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !model.Aborted() {
		t.Fatalf("expected ctrl+c to abort")
	}
	if _, ok := model.Chosen(); ok {
		t.Fatalf("aborted picker should not report a choice")
	}
	if !h.Quit() {
		t.Fatalf("expected quit after abort")
	}
}

func TestModelViewListsEntries(t *testing.T) {
	model := NewModel(fullMenu(t), "onekey", true)
	view := NewHarness(model).View()
	for _, want := range []string{"onekey", "0  Republish site", "5  Push to GitHub", filterPrompt, footerHint} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelViewTruncatesToWidth(t *testing.T) {
	model := NewModel(fullMenu(t), "", false)
	h := NewHarness(model)
	h.Send(tea.WindowSizeMsg{Width: 12, Height: 10})
	if !strings.Contains(h.View(), "…") {
		t.Fatalf("expected truncated labels in narrow view:\n%s", h.View())
	}
}
