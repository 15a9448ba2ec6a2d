package app

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/atomicstack/onekey/internal/console"
	"github.com/atomicstack/onekey/internal/dispatcher"
	"github.com/atomicstack/onekey/internal/logging/events"
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/prompt"
	"github.com/atomicstack/onekey/internal/shell"
	"github.com/atomicstack/onekey/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Preset      menu.Preset
	Mode        shell.Mode
	Interpreter []string
	WorkDir     string
	Title       string
	TUI         bool
	ShowFooter  bool
	Colorless   bool
}

// Run wires the menu to the process' standard streams and loops until the
// input ends or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	reporter := console.New(os.Stdout, cfg.Colorless)
	runner := shell.NewRunner(cfg.Interpreter, cfg.WorkDir)
	d, err := newDispatcher(cfg, reporter, runner, selectPrompter(cfg, os.Stdin, reporter))
	if err != nil {
		return err
	}
	return d.Run(ctx)
}

func selectPrompter(cfg Config, in io.Reader, reporter prompt.Output) dispatcher.Prompter {
	if cfg.TUI {
		if ui.Available() {
			return ui.NewPrompter(in, os.Stdout, cfg.Title, cfg.ShowFooter)
		}
		events.App.Fallback("tui", "standard streams are not a terminal")
	}
	return prompt.NewLine(in, reporter)
}

func newDispatcher(cfg Config, reporter dispatcher.Reporter, runner dispatcher.Runner, p dispatcher.Prompter) (*dispatcher.Dispatcher, error) {
	m, err := menu.ForPreset(cfg.Preset)
	if err != nil {
		return nil, errors.Wrap(err, "build menu")
	}
	return dispatcher.New(m, reporter, runner, p, dispatcher.Options{
		Mode:  cfg.Mode,
		Title: cfg.Title,
	}), nil
}
