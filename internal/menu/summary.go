package menu

// EntrySummary is the listing form of an entry used by `onekey presets`.
type EntrySummary struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Message string   `yaml:"message"`
	Steps   []string `yaml:"steps"`
}

// PresetSummary groups the entry listings of one preset.
type PresetSummary struct {
	Preset  Preset         `yaml:"preset"`
	Entries []EntrySummary `yaml:"entries"`
}

// Summary describes the menu for listing.
func (m *Menu) Summary() PresetSummary {
	out := PresetSummary{Preset: m.preset, Entries: make([]EntrySummary, 0, len(m.entries))}
	for _, e := range m.entries {
		steps := make([]string, 0, len(e.Action.Steps))
		for _, s := range e.Action.Steps {
			steps = append(steps, s.String())
		}
		out.Entries = append(out.Entries, EntrySummary{
			Key:     e.Key,
			Label:   e.Label,
			Message: e.Action.Message,
			Steps:   steps,
		})
	}
	return out
}
