package menu

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/onekey/internal/shell"
)

// StepKind tags the variant held by a Step.
type StepKind int

const (
	// StepRun issues a fixed invocation.
	StepRun StepKind = iota
	// StepPrompt asks the user for text and appends it to a command prefix.
	StepPrompt
)

// Step is one unit of work inside an Action.
type Step struct {
	Kind     StepKind
	Command  shell.Invocation
	Question string
	Prefix   []string
}

// Run returns a step that hands line to the command interpreter.
func Run(line string) Step {
	return Step{Kind: StepRun, Command: shell.Line(line)}
}

// Prompt returns a step that asks question and runs prefix followed by the
// reply.
func Prompt(question string, prefix ...string) Step {
	return Step{Kind: StepPrompt, Question: question, Prefix: append([]string(nil), prefix...)}
}

// Invocation resolves the command the step runs. The reply is only used by
// prompt steps.
func (s Step) Invocation(mode shell.Mode, reply string) shell.Invocation {
	if s.Kind == StepPrompt {
		return shell.Splice(mode, s.Prefix, reply)
	}
	return s.Command
}

// String renders the step for listings; prompt replies show as <input>.
func (s Step) String() string {
	if s.Kind == StepPrompt {
		return strings.Join(s.Prefix, " ") + " <input>"
	}
	return s.Command.String()
}

// Action is bound to a menu key. Message is reported before the first step.
type Action struct {
	Message string
	Steps   []Step
}

// Entry is a selectable menu line.
type Entry struct {
	Key    string
	Label  string
	Action Action
}

// Menu is an ordered, key-indexed set of entries built from a preset.
type Menu struct {
	preset  Preset
	entries []Entry
	index   map[string]int
}

// New builds a menu, rejecting keys that are not a single character or that
// repeat.
func New(preset Preset, entries []Entry) (*Menu, error) {
	m := &Menu{
		preset:  preset,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if utf8.RuneCountInString(entry.Key) != 1 {
			return nil, fmt.Errorf("menu %s: key %q must be a single character", preset, entry.Key)
		}
		if _, dup := m.index[entry.Key]; dup {
			return nil, fmt.Errorf("menu %s: duplicate key %q", preset, entry.Key)
		}
		m.index[entry.Key] = len(m.entries)
		m.entries = append(m.entries, entry)
	}
	return m, nil
}

// Preset reports which preset the menu was built from.
func (m *Menu) Preset() Preset {
	return m.preset
}

// Entries returns the entries in display order.
func (m *Menu) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return len(m.entries)
}

// Lookup finds the entry bound to key. The key is matched exactly.
func (m *Menu) Lookup(key string) (Entry, bool) {
	idx, ok := m.index[key]
	if !ok {
		return Entry{}, false
	}
	return m.entries[idx], true
}
