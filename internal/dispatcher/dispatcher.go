package dispatcher

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/atomicstack/onekey/internal/console"
	"github.com/atomicstack/onekey/internal/logging/events"
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/prompt"
	"github.com/atomicstack/onekey/internal/shell"
)

// Reporter prints status lines and controls the screen.
type Reporter interface {
	Report(message string, level console.Level)
	Clear()
	SetTitle(title string)
}

// Runner executes one invocation and waits for it.
type Runner interface {
	Run(inv shell.Invocation) error
}

// Prompter presents the menu and collects free-text replies.
type Prompter interface {
	Select(m *menu.Menu) (string, error)
	Ask(question string) (string, error)
}

// Options tune a Dispatcher.
type Options struct {
	Mode  shell.Mode
	Title string
}

// Dispatcher maps menu selections to their actions.
type Dispatcher struct {
	menu     *menu.Menu
	reporter Reporter
	runner   Runner
	prompter Prompter
	mode     shell.Mode
	title    string
}

func New(m *menu.Menu, r Reporter, run Runner, p Prompter, opts Options) *Dispatcher {
	mode := opts.Mode
	if mode == "" {
		mode = shell.ModeShell
	}
	return &Dispatcher{
		menu:     m,
		reporter: r,
		runner:   run,
		prompter: p,
		mode:     mode,
		title:    opts.Title,
	}
}

// Menu returns the active menu.
func (d *Dispatcher) Menu() *menu.Menu {
	return d.menu
}

// Run presents the menu and dispatches selections until the input ends, the
// prompter is aborted or ctx is cancelled. Each iteration is independent.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			events.App.Stop("context")
			return nil
		}
		d.reporter.SetTitle(d.title)
		selection, err := d.PresentMenu()
		if err != nil {
			if isEndOfInput(err) {
				events.App.Stop(err.Error())
				return nil
			}
			return errors.Wrap(err, "read selection")
		}
		d.Dispatch(selection)
	}
}

// PresentMenu shows the entries, blocks for one selection, clears the screen
// and returns the raw token.
func (d *Dispatcher) PresentMenu() (string, error) {
	events.Menu.Present(string(d.menu.Preset()), d.menu.Len())
	selection, err := d.prompter.Select(d.menu)
	if err != nil {
		return "", err
	}
	d.reporter.Clear()
	return selection, nil
}

// Dispatch runs the action bound to selection. Unknown selections are a
// no-op.
func (d *Dispatcher) Dispatch(selection string) {
	entry, ok := d.menu.Lookup(selection)
	if !ok {
		events.Menu.Ignore(selection)
		return
	}
	events.Menu.Select(entry.Key, entry.Label)
	d.perform(entry)
}

// perform reports the action message then runs every step in order. Exit
// statuses are traced and otherwise ignored, so a failing step never stops
// the ones after it.
func (d *Dispatcher) perform(entry menu.Entry) {
	act := entry.Action
	events.Action.Start(entry.Key, act.Message, len(act.Steps))
	d.reporter.Report(act.Message, console.Success)
	for i, step := range act.Steps {
		reply := ""
		if step.Kind == menu.StepPrompt {
			var err error
			reply, err = d.prompter.Ask(step.Question)
			if err != nil {
				d.reporter.Report("No input received, skipping: "+entry.Label, console.Alert)
				events.Action.Abort(entry.Key, i, err)
				return
			}
			events.Prompt.Reply(step.Question, reply)
		}
		inv := step.Invocation(d.mode, reply)
		events.Command.Start(entry.Key, inv.String(), !inv.IsLine())
		err := d.runner.Run(inv)
		events.Command.Finish(entry.Key, inv.String(), err)
	}
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrAborted)
}
