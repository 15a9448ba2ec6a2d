package menu

import (
	"fmt"
	"strings"
)

// Preset names a key-to-action table.
type Preset string

const (
	// PresetFull is the six-entry layout with every step split out.
	PresetFull Preset = "full"
	// PresetCompact is the four-entry layout with fused sequences.
	PresetCompact Preset = "compact"
)

const (
	cleanOutput = "rd public /s /q"
	buildSite   = "hugo -D"
	serveSite   = "http-server public -p 80"
	gitCommit   = "TortoiseGitProc.exe /command:commit"
	gitPush     = "TortoiseGitProc.exe /command:push"

	chapterQuestion = "Enter path and chapter name: "
	articleQuestion = "Enter path and article name: "
)

var rebuildSite = cleanOutput + " && " + buildSite

// action builds an Action whose message is the entry label.
func action(label string, steps ...Step) Action {
	return Action{Message: label, Steps: steps}
}

func entry(key, label string, steps ...Step) Entry {
	return Entry{Key: key, Label: label, Action: action(label, steps...)}
}

func fullEntries() []Entry {
	return []Entry{
		entry("0", "Republish site", Run(cleanOutput), Run(buildSite)),
		entry("1", "Create chapter", Prompt(chapterQuestion, "hugo", "new", "--kind", "chapter")),
		entry("2", "Create article", Prompt(articleQuestion, "hugo", "new")),
		entry("3", "Run site locally", Run(cleanOutput), Run(buildSite), Run(serveSite)),
		entry("4", "Commit to git", Run(gitCommit)),
		entry("5", "Push to GitHub", Run(gitPush)),
	}
}

func compactEntries() []Entry {
	return []Entry{
		entry("0", "Republish site", Run(rebuildSite)),
		entry("1", "Create article", Prompt(articleQuestion, "hugo", "new")),
		entry("2", "Run site locally", Run(rebuildSite), Run(serveSite)),
		entry("3", "Commit and push", Run(gitCommit), Run(gitPush)),
	}
}

var registry = map[Preset]func() []Entry{
	PresetFull:    fullEntries,
	PresetCompact: compactEntries,
}

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetFull, PresetCompact}
}

// ParsePreset resolves a preset name. The empty string maps to PresetFull.
func ParsePreset(name string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return PresetFull, nil
	}
	if _, ok := registry[p]; !ok {
		names := make([]string, 0, len(registry))
		for _, known := range Presets() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown preset %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}

// ForPreset builds the menu for a preset.
func ForPreset(p Preset) (*Menu, error) {
	build, ok := registry[p]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", p)
	}
	return New(p, build())
}
