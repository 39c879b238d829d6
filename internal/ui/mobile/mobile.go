// Package mobile is the narrow presentation: a collapsed search bar that
// expands into a full-screen search overlay.
package mobile

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trialsearch/internal/icons"
	"github.com/llehouerou/trialsearch/internal/input"
	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/layout"
	"github.com/llehouerou/trialsearch/internal/ui/render"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// Source names the mobile shell in action messages.
const Source = "mobile"

const (
	barRow    = 0
	listTop   = 3
	statusGap = 1 // bottom status line
)

var _ shell.Shell = (*Model)(nil)

// Model is the mobile shell.
type Model struct {
	shell.Core
	open      bool
	collapsed *keymap.Resolver
	expanded  *keymap.Resolver
}

// New creates the mobile shell. Every keystroke reaches the store; only
// the fetch is debounced.
func New(d shell.Deps) *Model {
	m := &Model{
		Core:      shell.NewCore(Source, input.Immediate, d),
		collapsed: keymap.ForContexts(keymap.ContextMobile),
		expanded:  keymap.ForContexts(keymap.ContextList, keymap.ContextMobile),
	}
	m.syncOpen()
	return m
}

// IsOpen reports whether the search overlay is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// SetOpen shows or hides the search overlay.
func (m *Model) SetOpen(open bool) {
	m.open = open
	m.syncOpen()
}

// Contexts implements shell.Shell.
func (m *Model) Contexts() []string {
	if m.open {
		return []string{keymap.ContextGlobal, keymap.ContextList, keymap.ContextMobile}
	}
	return []string{keymap.ContextGlobal, keymap.ContextMobile}
}

// SetSize implements shell.Shell.
func (m *Model) SetSize(width, height int) {
	m.Core.SetSize(width, height)
	g := m.geometry()
	m.Field.Width = max(g.field-1, 1)
	m.List.SetSize(width, layout.Rows(height, listTop, statusGap))
}

// Update implements shell.Shell.
func (m *Model) Update(msg tea.Msg) (shell.Shell, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.open {
			cmd = m.handleExpandedKey(msg)
		} else {
			cmd = m.handleCollapsedKey(msg)
		}
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	default:
		var ok bool
		if cmd, ok = m.HandleShared(msg); !ok {
			cmd = m.UpdateField(msg)
		}
	}
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) handleCollapsedKey(msg tea.KeyMsg) tea.Cmd {
	if m.collapsed.Resolve(msg.String()) == keymap.ActionOpenOverlay {
		m.SetOpen(true)
		return nil
	}
	// Typing on the bar opens the overlay with the text in it.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.SetOpen(true)
		return m.UpdateField(msg)
	}
	return nil
}

func (m *Model) handleExpandedKey(msg tea.KeyMsg) tea.Cmd {
	a := m.expanded.Resolve(msg.String())
	switch a {
	case keymap.ActionMoveDown, keymap.ActionMoveUp, keymap.ActionSelect, keymap.ActionClear:
		return m.Navigate(shell.Event(a, msg))
	case keymap.ActionBack:
		m.SetOpen(false)
		return nil
	case keymap.ActionErase:
		return m.Clear()
	case keymap.ActionSubmit:
		return m.Submit()
	}
	return m.UpdateField(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := m.geometry()
	if !m.open {
		if g.bar.Clicked(msg) {
			m.SetOpen(true)
		}
		return nil
	}

	switch {
	case g.back.Clicked(msg):
		m.SetOpen(false)
		return nil
	case g.clear.Clicked(msg):
		return m.Clear()
	case g.search.Clicked(msg):
		return m.Submit()
	}
	return m.Mouse(msg, listTop)
}

func (m *Model) sync() tea.Cmd {
	cmd := m.Sync()
	m.syncOpen()
	return cmd
}

// syncOpen shows the list only inside the overlay and only for a
// non-empty query.
func (m *Model) syncOpen() {
	m.List.SetOpen(m.open && m.Query() != "")
}

type geometry struct {
	field                     int
	backTxt, clearTxt, srcTxt string
	back, clear, search, bar  shell.Hotspot
}

func (m *Model) geometry() geometry {
	g := geometry{
		backTxt:  "[" + icons.Back() + "]",
		clearTxt: "[" + icons.Clear() + "]",
		srcTxt:   "[" + icons.Search() + "]",
	}
	bw := ansi.StringWidth(g.backTxt)
	cw := ansi.StringWidth(g.clearTxt)
	sw := ansi.StringWidth(g.srcTxt)
	g.field = max(m.Width()-bw-cw-sw-3, 1)

	g.back = shell.Hotspot{Row: barRow, Col: 0, Width: bw}
	g.clear = shell.Hotspot{Row: barRow, Col: bw + 1 + g.field + 1, Width: cw}
	g.search = shell.Hotspot{Row: barRow, Col: g.clear.Col + cw + 1, Width: sw}

	// The collapsed bar is the bordered box under the heading.
	top := len(m.Labels().Heading) + 1
	g.bar = shell.Hotspot{Row: top + 1, Col: 0, Width: m.Width()}
	return g
}

// View implements shell.Shell.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	var lines []string
	if m.open {
		lines = m.expandedLines()
	} else {
		lines = m.collapsedLines()
	}
	if len(lines) > m.Height() {
		lines = lines[:m.Height()]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) collapsedLines() []string {
	s := styles.T().S()
	l := m.Labels()
	w := m.Width()

	lines := make([]string, 0, len(l.Heading)+5)
	for _, h := range l.Heading {
		lines = append(lines, styles.Heading(render.Truncate(h, w)))
	}
	lines = append(lines, "")

	text := l.SearchBar
	if q := m.Query(); q != "" {
		text = q
	}
	inner := max(w-4, 1)
	label := render.TruncateAndPad(icons.Button(icons.Search(), text), inner)
	box := styles.InputBox(false).Render(s.Muted.Render(label))
	lines = append(lines, strings.Split(box, "\n")...)
	lines = append(lines, render.Row("", s.Subtle.Render(l.Hint), w))
	return lines
}

func (m *Model) expandedLines() []string {
	s := styles.T().S()
	l := m.Labels()
	w := m.Width()
	g := m.geometry()

	field := ansi.Truncate(m.Field.View(), g.field, "")
	field += strings.Repeat(" ", max(g.field-ansi.StringWidth(field), 0))
	bar := s.Button.Render(g.backTxt) + " " + field + " " +
		s.Muted.Render(g.clearTxt) + " " + s.Button.Render(g.srcTxt)

	lines := make([]string, 0, m.Height())
	lines = append(lines, bar, s.Subtle.Render(render.Separator(w)), m.title())

	if m.List.IsOpen() {
		if v := m.List.View(); v != "" {
			lines = append(lines, strings.Split(v, "\n")...)
		}
	}

	// Keep the status line at the bottom of the screen.
	for len(lines) < m.Height()-statusGap {
		lines = append(lines, "")
	}
	status := ""
	if m.Result().Status == state.StatusSuccess {
		status = m.Status()
	}
	return append(lines, render.Row(status, s.Subtle.Render(l.Hint), w))
}

// title is the line above the list: loading, failure, empty state or the
// recommended searches heading.
func (m *Model) title() string {
	s := styles.T().S()
	l := m.Labels()
	r := m.Result()

	switch {
	case r.Status == state.StatusLoading, r.Status == state.StatusError:
		return m.Status()
	case m.Query() == "":
		return ""
	case r.Status == state.StatusSuccess && m.List.Len() == 0:
		return s.Muted.Render(l.NoResults)
	case m.List.Len() > 0:
		return s.Title.Render(l.Recommended)
	}
	return ""
}
