// Package navigation implements keyboard navigation over the result
// dropdown: selection movement, commit and clear.
package navigation

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/cursor"
)

// Key is a navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyUp
	KeyEnter
	KeyEscape
)

// Event is one key press. Composing is set while an input method is
// composing text (a bracketed paste in a terminal); such events never move
// the selection or commit.
type Event struct {
	Key       Key
	Composing bool
}

// FromKeyMsg maps a bubbletea key to a navigation event.
func FromKeyMsg(msg tea.KeyMsg) Event {
	ev := Event{Composing: msg.Paste}
	switch msg.Type {
	case tea.KeyDown:
		ev.Key = KeyDown
	case tea.KeyUp:
		ev.Key = KeyUp
	case tea.KeyEnter:
		ev.Key = KeyEnter
	case tea.KeyEsc:
		ev.Key = KeyEscape
	}
	return ev
}

// View is what the machine needs to know about the shell.
type View struct {
	Open   bool // dropdown visible
	Query  string
	Items  []state.ResultItem
	Height int // visible rows, for scrolling
}

// OutcomeKind says what the shell has to do after an event.
type OutcomeKind int

const (
	None   OutcomeKind = iota
	Moved              // selection changed
	Commit             // navigate to Target
	Clear              // empty the query
)

// Outcome is the result of handling an event.
type Outcome struct {
	Kind   OutcomeKind
	Target string
}

// Machine holds the selection of one shell.
type Machine struct {
	cursor cursor.Cursor
}

// New creates a machine with no selection.
func New(margin int) *Machine {
	return &Machine{cursor: cursor.New(margin)}
}

// Cursor exposes the selection for rendering.
func (m *Machine) Cursor() *cursor.Cursor {
	return &m.cursor
}

// Selected returns the selected index and whether there is one.
func (m *Machine) Selected() (int, bool) {
	return m.cursor.Selected()
}

// Sync resets the selection when a different result set is shown.
func (m *Machine) Sync(setID uint64, n int) {
	m.cursor.Sync(setID, n)
}

// Hover selects item i exactly.
func (m *Machine) Hover(i int, v View) Outcome {
	if !v.Open || i < 0 || i >= len(v.Items) {
		return Outcome{}
	}
	if pos, ok := m.cursor.Selected(); ok && pos == i {
		return Outcome{}
	}
	m.cursor.Hover(i, len(v.Items))
	return Outcome{Kind: Moved}
}

// Click commits item i.
func (m *Machine) Click(i int, v View) Outcome {
	if !v.Open || i < 0 || i >= len(v.Items) {
		return Outcome{}
	}
	m.cursor.Hover(i, len(v.Items))
	return Outcome{Kind: Commit, Target: v.Items[i].Target}
}

// Handle applies a key event.
func (m *Machine) Handle(ev Event, v View) Outcome {
	if ev.Composing {
		return Outcome{}
	}

	active := v.Open && len(v.Items) > 0
	switch ev.Key {
	case KeyDown:
		if !active {
			return Outcome{}
		}
		m.cursor.Down(len(v.Items), v.Height)
		return Outcome{Kind: Moved}

	case KeyUp:
		if !active {
			return Outcome{}
		}
		m.cursor.Up(len(v.Items), v.Height)
		return Outcome{Kind: Moved}

	case KeyEnter:
		if active {
			if i, ok := m.cursor.Selected(); ok && i < len(v.Items) {
				return Outcome{Kind: Commit, Target: v.Items[i].Target}
			}
		}
		if v.Query == "" {
			return Outcome{}
		}
		return Outcome{Kind: Commit, Target: v.Query}

	case KeyEscape:
		m.cursor.Reset()
		return Outcome{Kind: Clear}
	}
	return Outcome{}
}
