// Package list renders the suggestion dropdown and routes keyboard and
// mouse input to the navigation machine.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/icons"
	"github.com/llehouerou/trialsearch/internal/navigation"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui"
	"github.com/llehouerou/trialsearch/internal/ui/render"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// Model is the suggestion list of one shell. The shell decides where it is
// drawn; the list only knows its width and the number of rows it may use.
type Model struct {
	ui.Base
	machine    *navigation.Machine
	parser     highlight.Parser
	items      []state.ResultItem
	open       bool
	maxVisible int
}

// New creates an empty, closed list.
func New(parser highlight.Parser, maxVisible int) Model {
	return Model{
		machine:    navigation.New(ui.ScrollMargin),
		parser:     parser,
		maxVisible: maxVisible,
	}
}

// SetItems shows a result set. A different setID clears the selection.
func (m *Model) SetItems(setID uint64, items []state.ResultItem) {
	m.items = items
	m.machine.Sync(setID, len(items))
	m.machine.Cursor().EnsureVisible(len(items), m.Rows())
}

// Clear drops the items and the selection.
func (m *Model) Clear() {
	m.items = nil
	m.machine.Sync(0, 0)
	m.machine.Cursor().Reset()
}

func (m Model) Items() []state.ResultItem { return m.items }
func (m Model) Len() int                  { return len(m.items) }
func (m Model) IsOpen() bool              { return m.open }

// SetOpen opens or closes the dropdown.
func (m *Model) SetOpen(open bool) {
	m.open = open
}

// Selected returns the selected item.
func (m Model) Selected() (state.ResultItem, bool) {
	i, ok := m.machine.Selected()
	if !ok || i >= len(m.items) {
		return state.ResultItem{}, false
	}
	return m.items[i], true
}

// SelectedIndex returns the selected index or cursor.None.
func (m Model) SelectedIndex() int {
	return m.machine.Cursor().Pos()
}

// Rows is the number of suggestion rows drawn.
func (m Model) Rows() int {
	rows := min(len(m.items), m.Height())
	if m.maxVisible > 0 {
		rows = min(rows, m.maxVisible)
	}
	return max(rows, 0)
}

func (m Model) view(query string) navigation.View {
	return navigation.View{
		Open:   m.open,
		Query:  query,
		Items:  m.items,
		Height: m.Rows(),
	}
}

// HandleKey applies a navigation event.
func (m *Model) HandleKey(ev navigation.Event, query string) navigation.Outcome {
	return m.machine.Handle(ev, m.view(query))
}

// HandleMouse maps a mouse event to a row. top is the screen row of the
// first suggestion. Motion selects the row under the pointer and a left
// press commits it.
func (m *Model) HandleMouse(msg tea.MouseMsg, top int, query string) navigation.Outcome {
	if !m.open {
		return navigation.Outcome{}
	}
	if msg.X < 0 || msg.X >= m.Width() {
		return navigation.Outcome{}
	}
	i, ok := m.machine.Cursor().RowAt(msg.Y-top, len(m.items), m.Rows())
	if !ok {
		return navigation.Outcome{}
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		return m.machine.Hover(i, m.view(query))
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.machine.Click(i, m.view(query))
	}
	return navigation.Outcome{}
}

// View renders the visible rows, each exactly Width cells wide.
func (m Model) View() string {
	rows := m.Rows()
	if rows == 0 || m.Width() <= 0 {
		return ""
	}

	s := styles.T().S()
	start, end := m.machine.Cursor().VisibleRange(len(m.items), rows)
	selected := m.machine.Cursor().Pos()

	pointer := icons.Pointer()
	gutter := ansi.StringWidth(pointer) + 1
	labelWidth := max(m.Width()-gutter, 1)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		ls := render.LabelStyles{Plain: s.Base, Match: s.Match}
		prefix := strings.Repeat(" ", gutter)
		if i == selected {
			ls = render.LabelStyles{
				Plain: s.Base.Background(s.Cursor.GetBackground()),
				Match: s.Match.Background(s.Cursor.GetBackground()),
			}
			prefix = s.Match.Render(pointer) + " "
		}

		line := prefix + render.Label(m.items[i].Label, m.parser, ls, labelWidth)
		if w := ansi.StringWidth(line); w < m.Width() {
			pad := strings.Repeat(" ", m.Width()-w)
			if i == selected {
				pad = s.Cursor.Render(pad)
			}
			line += pad
		}
		lines = append(lines, ansi.Truncate(line, m.Width(), ""))
	}
	return strings.Join(lines, "\n")
}
