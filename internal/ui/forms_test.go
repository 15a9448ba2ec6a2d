package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormCollectsReply(t *testing.T) {
	form := NewForm("Enter path and article name: ")
	for _, msg := range []tea.Msg{runes("post/"), runes("hello.md")} {
		form.Update(msg)
	}
	if got := form.Value(); got != "post/hello.md" {
		t.Fatalf("expected reply post/hello.md, got %q", got)
	}
	if !strings.Contains(form.View(), "Enter path and article name:") {
		t.Fatalf("view missing question:\n%s", form.View())
	}
	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !form.Done() || form.Cancelled() {
		t.Fatalf("expected form to be done")
	}
	if cmd == nil {
		t.Fatalf("expected quit command on enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg on enter")
	}
}

func TestFormEscCancels(t *testing.T) {
	form := NewForm("question")
	form.Update(runes("draft"))
	form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !form.Cancelled() || form.Done() {
		t.Fatalf("expected cancelled form")
	}
	if form.View() != "" {
		t.Fatalf("expected empty view after cancel")
	}
}
