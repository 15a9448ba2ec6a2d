package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/onekey/internal/console"
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/prompt"
	"github.com/atomicstack/onekey/internal/shell"
)

type recordingRunner struct {
	commands []string
}

func (r *recordingRunner) Run(inv shell.Invocation) error {
	r.commands = append(r.commands, inv.String())
	return nil
}

func TestNewDispatcherRunsCompactPreset(t *testing.T) {
	var out bytes.Buffer
	reporter := console.NewPlain(&out)
	runner := &recordingRunner{}
	in := strings.NewReader("0\n9\n1\nposts/new.md\n")
	cfg := Config{Preset: menu.PresetCompact, Mode: shell.ModeShell, Title: "onekey"}

	d, err := newDispatcher(cfg, reporter, runner, prompt.NewLine(in, reporter))
	if err != nil {
		t.Fatalf("newDispatcher: %v", err)
	}
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"rd public /s /q && hugo -D", "hugo new posts/new.md"}
	if diff := cmp.Diff(want, runner.commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), "Republish site\n") {
		t.Fatalf("expected action message in output:\n%s", out.String())
	}
}

func TestNewDispatcherRejectsUnknownPreset(t *testing.T) {
	var out bytes.Buffer
	reporter := console.NewPlain(&out)
	_, err := newDispatcher(Config{Preset: "nope"}, reporter, &recordingRunner{}, prompt.NewLine(strings.NewReader(""), reporter))
	if err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestSelectPrompterFallsBackToLines(t *testing.T) {
	var out bytes.Buffer
	reporter := console.NewPlain(&out)
	p := selectPrompter(Config{TUI: true}, strings.NewReader(""), reporter)
	if _, ok := p.(*prompt.Line); !ok {
		t.Fatalf("expected line prompter without a terminal, got %T", p)
	}
}
