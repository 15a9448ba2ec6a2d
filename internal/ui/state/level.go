package state

import "github.com/atomicstack/onekey/internal/menu"

// Level holds the picker's view of a menu: the visible entries after
// filtering, the cursor and the filter text.
type Level struct {
	ID     string
	Title  string
	Items  []menu.Entry
	Full   []menu.Entry
	Filter string
	Cursor int
}

// NewLevel builds a level over entries with the cursor on the first one.
func NewLevel(id, title string, entries []menu.Entry) *Level {
	l := &Level{ID: id, Title: title}
	l.Full = append([]menu.Entry(nil), entries...)
	l.applyFilter()
	return l
}

// Current returns the entry under the cursor.
func (l *Level) Current() (menu.Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// MoveCursor shifts the cursor by delta, wrapping at both ends.
func (l *Level) MoveCursor(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	next := ((l.Cursor+delta)%n + n) % n
	if next == l.Cursor {
		return false
	}
	l.Cursor = next
	return true
}

// FindKey returns the entry bound to key among all entries, ignoring the
// filter.
func (l *Level) FindKey(key string) (menu.Entry, bool) {
	for _, e := range l.Full {
		if e.Key == key {
			return e, true
		}
	}
	return menu.Entry{}, false
}
