// Package desktop is the wide presentation: a headline, an inline search
// field with a search button, and a dropdown of suggestions under it.
package desktop

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trialsearch/internal/icons"
	"github.com/llehouerou/trialsearch/internal/input"
	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui"
	"github.com/llehouerou/trialsearch/internal/ui/layout"
	"github.com/llehouerou/trialsearch/internal/ui/render"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// Source names the desktop shell in action messages.
const Source = "desktop"

// maxContentWidth keeps the widget readable on very wide terminals.
const maxContentWidth = 72

var _ shell.Shell = (*Model)(nil)

// Model is the desktop shell.
type Model struct {
	shell.Core
	keys    *keymap.Resolver
	shownID uint64 // result set the dropdown was last opened for
}

// New creates the desktop shell. The query is debounced before it reaches
// the store.
func New(d shell.Deps) *Model {
	m := &Model{
		Core: shell.NewCore(Source, input.Deferred, d),
		keys: keymap.ForContexts(keymap.ContextList, keymap.ContextDesktop),
	}
	m.syncOpen()
	return m
}

// Contexts implements shell.Shell.
func (m *Model) Contexts() []string {
	return []string{keymap.ContextGlobal, keymap.ContextList, keymap.ContextDesktop}
}

// SetSize implements shell.Shell.
func (m *Model) SetSize(width, height int) {
	m.Core.SetSize(width, height)
	g := m.geometry()
	m.Field.Width = max(g.field-1, 1)
	m.List.SetSize(g.listWidth, g.rows)
}

// Update implements shell.Shell.
func (m *Model) Update(msg tea.Msg) (shell.Shell, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
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

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	a := m.keys.Resolve(msg.String())
	switch a {
	case keymap.ActionMoveDown, keymap.ActionMoveUp, keymap.ActionSelect, keymap.ActionClear:
		return m.Navigate(shell.Event(a, msg))
	case keymap.ActionToggleDropdown:
		if m.List.Len() > 0 {
			m.List.SetOpen(!m.List.IsOpen())
		}
		return nil
	}
	return m.UpdateField(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := m.geometry()
	if g.button.Clicked(msg) {
		return m.Submit()
	}
	if g.toggle.Clicked(msg) && m.List.Len() > 0 {
		m.List.SetOpen(!m.List.IsOpen())
		return nil
	}
	// List columns start inside the panel border and padding.
	msg.X -= 2
	return m.Mouse(msg, g.listTop)
}

func (m *Model) sync() tea.Cmd {
	cmd := m.Sync()
	m.syncOpen()
	return cmd
}

// syncOpen opens the dropdown once per result set that has suggestions and
// closes it otherwise. A set the user closed stays closed.
func (m *Model) syncOpen() {
	r := m.Result()
	if r.Status != state.StatusSuccess || r.Results.TotalCount <= 0 || r.Results.Empty() {
		m.List.SetOpen(false)
		m.shownID = 0
		return
	}
	if r.Results.ID != m.shownID {
		m.shownID = r.Results.ID
		m.List.SetOpen(true)
	}
}

// geometry is where everything is drawn, shared by View and mouse hit
// testing.
type geometry struct {
	content   int // total width
	field     int // cells for the text field
	boxWidth  int // outer width of the input box
	inputTop  int
	statusRow int
	panelTop  int
	listTop   int
	listWidth int
	rows      int
	button    shell.Hotspot
	toggle    shell.Hotspot
	buttonTxt string
}

func (m *Model) geometry() geometry {
	l := m.Labels()
	g := geometry{
		content:   layout.ListWidth(m.Width(), maxContentWidth, ui.MinListWidth),
		buttonTxt: "[" + icons.Button(icons.Search(), l.Search) + "]",
		inputTop:  len(l.Heading) + 1,
	}

	buttonW := ansi.StringWidth(g.buttonTxt)
	glyphW := ansi.StringWidth(icons.Dropdown(m.List.IsOpen()))
	// border and padding on both sides, a space before the glyph
	g.field = max(g.content-buttonW-1-4-1-glyphW, 1)
	g.boxWidth = g.field + 4 + 1 + glyphW

	g.button = shell.Hotspot{Row: g.inputTop + 1, Col: g.boxWidth + 1, Width: buttonW}
	g.toggle = shell.Hotspot{Row: g.inputTop + 1, Col: g.boxWidth - 2 - glyphW, Width: glyphW}

	g.statusRow = g.inputTop + ui.InputHeight
	g.panelTop = g.statusRow + 1
	g.listTop = g.panelTop + 1 + ui.HeaderHeight
	g.listWidth = max(g.content-4, 1)
	g.rows = layout.Rows(m.Height(), g.panelTop, ui.PanelOverhead)
	return g
}

// View implements shell.Shell.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	g := m.geometry()
	s := styles.T().S()
	l := m.Labels()

	lines := make([]string, 0, m.Height())
	for _, h := range l.Heading {
		lines = append(lines, styles.Heading(render.Truncate(h, g.content)))
	}
	lines = append(lines, "")

	field := ansi.Truncate(m.Field.View(), g.field, "")
	field += strings.Repeat(" ", max(g.field-ansi.StringWidth(field), 0))
	box := styles.InputBox(true).Render(field + " " + s.Muted.Render(icons.Dropdown(m.List.IsOpen())))
	lines = append(lines, strings.Split(
		lipgloss.JoinHorizontal(lipgloss.Center, box, " ", s.Button.Render(g.buttonTxt)), "\n")...)

	lines = append(lines, render.Row(m.statusText(), s.Subtle.Render(l.Hint), g.content))

	if m.List.IsOpen() && m.List.Rows() > 0 {
		panel := styles.Panel(true).Padding(0, 1).Render(
			s.Title.Render(render.TruncateAndPad(l.Recommended, g.listWidth)) + "\n" +
				s.Subtle.Render(render.Separator(g.listWidth)) + "\n" +
				m.List.View(),
		)
		lines = append(lines, strings.Split(panel, "\n")...)
	}

	if len(lines) > m.Height() {
		lines = lines[:m.Height()]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusText() string {
	r := m.Result()
	if r.Status == state.StatusSuccess && r.Results.Empty() {
		return styles.T().S().Muted.Render(m.Labels().NoResults)
	}
	return m.Status()
}
