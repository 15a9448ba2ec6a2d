package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/onekey/internal/menu"
)

// SetFilter replaces the filter text and moves the cursor to the best match.
func (l *Level) SetFilter(query string) {
	l.Filter = query
	l.applyFilter()
	if idx := BestMatchIndex(l.Items, query); idx >= 0 {
		l.Cursor = idx
	}
}

// AppendFilter adds text to the end of the filter.
func (l *Level) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// DeleteFilterRuneBackward drops the last rune of the filter.
func (l *Level) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// ClearFilter empties the filter.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("")
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterEntries(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
}

// FilterEntries keeps entries whose label fuzzily matches query, falling back
// to substring matches on label or key.
func FilterEntries(entries []menu.Entry, query string) []menu.Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]menu.Entry(nil), entries...)
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	if ranks := fuzzy.RankFindNormalizedFold(trimmed, labels); len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]menu.Entry, 0, len(matches))
		for idx, e := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, e)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), lower) || e.Key == trimmed {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BestMatchIndex prefers an exact label match, then a label prefix, then the
// first entry.
func BestMatchIndex(entries []menu.Entry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, e := range entries {
		if strings.EqualFold(e.Label, trimmed) {
			return i
		}
	}
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Label), lower) {
			return i
		}
	}
	return 0
}
