package events

import "github.com/atomicstack/onekey/internal/logging"

type MenuTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type PromptTracer struct{}

var (
	Menu    = MenuTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Prompt  = PromptTracer{}
)

func (MenuTracer) Present(preset string, entries int) {
	logging.Trace("menu.present", map[string]interface{}{"preset": preset, "entries": entries})
}

func (MenuTracer) Select(key, label string) {
	logging.Trace("menu.select", map[string]interface{}{"key": key, "label": label})
}

func (MenuTracer) Ignore(key string) {
	logging.Trace("menu.ignore", map[string]interface{}{"key": key})
}

func (ActionTracer) Start(key, message string, steps int) {
	logging.Trace("action.start", map[string]interface{}{"key": key, "message": message, "steps": steps})
}

func (ActionTracer) Abort(key string, step int, err error) {
	payload := map[string]interface{}{"key": key, "step": step}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("action.abort", payload)
}

func (CommandTracer) Start(key, line string, argv bool) {
	logging.Trace("command.start", map[string]interface{}{"key": key, "line": line, "argv": argv})
}

// Finish records the outcome of an invocation. The error is informational
// only; nothing acts on it.
func (CommandTracer) Finish(key, line string, err error) {
	payload := map[string]interface{}{"key": key, "line": line}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.finish", payload)
}

func (PromptTracer) Reply(question, reply string) {
	logging.Trace("prompt.reply", map[string]interface{}{"question": question, "reply": reply})
}
