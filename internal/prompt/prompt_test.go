package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/atomicstack/onekey/internal/console"
	"github.com/atomicstack/onekey/internal/menu"
)

func TestReadLineKeepsTokensAcrossCalls(t *testing.T) {
	l := NewLine(strings.NewReader("1\n2\r\n\n  3 \nlast"), console.NewPlain(io.Discard))
	want := []string{"1", "2", "", "  3 ", "last"}
	for i, w := range want {
		got, err := l.ReadLine()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Fatalf("read %d: got %q want %q", i, got, w)
		}
	}
	if _, err := l.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestSelectPrintsMenuInOrder(t *testing.T) {
	m, err := menu.ForPreset(menu.PresetCompact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	l := NewLine(strings.NewReader("2\n"), console.NewPlain(&out))
	got, err := l.Select(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2" {
		t.Fatalf("got selection %q", got)
	}
	want := strings.Join([]string{
		menuHeader,
		"0.Republish site",
		"1.Create article",
		"2.Run site locally",
		"3.Commit and push",
		menuFooter,
		selectQuestion,
	}, "\n")
	if out.String() != want {
		t.Fatalf("unexpected menu output:\n%s", out.String())
	}
}

func TestSelectColorsHeaderAndEntries(t *testing.T) {
	m, err := menu.New(menu.PresetFull, []menu.Entry{{Key: "0", Label: "Only"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	l := NewLine(strings.NewReader("0\n"), console.NewANSI(&out))
	if _, err := l.Select(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[34m"+menuHeader+"\x1b[0m\n") {
		t.Fatalf("header not rendered with info accent: %q", out.String())
	}
	if !strings.Contains(out.String(), "\x1b[32m0.Only\x1b[0m\n") {
		t.Fatalf("entry not rendered with success accent: %q", out.String())
	}
}

func TestAskReturnsReplyVerbatim(t *testing.T) {
	var out bytes.Buffer
	l := NewLine(strings.NewReader("post/my new post.md\n"), console.NewPlain(&out))
	got, err := l.Ask("Name: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "post/my new post.md" {
		t.Fatalf("got %q", got)
	}
	if out.String() != "Name: " {
		t.Fatalf("unexpected prompt output %q", out.String())
	}
}
