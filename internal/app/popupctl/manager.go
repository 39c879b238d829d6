// Package popupctl owns the modal popups drawn over the active shell.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/ui/helpbindings"
	"github.com/llehouerou/trialsearch/internal/ui/popup"
)

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Help
)

// Priority lists popups from the one that takes the keyboard first.
var Priority = []Type{Help}

// Manager holds the open popups and their size limits.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.Size
	width  int
	height int
}

// New creates a manager with nothing open.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.Size{
			Help: {MaxWidth: 64},
		},
	}
}

// SetSize updates the screen size and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(t))
	}
}

// IsVisible reports whether popup t is open.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// Active returns the popup that owns the keyboard, or None.
func (p *Manager) Active() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show opens pop as t.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(t))
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes popup t.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get returns popup t or nil.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// ShowHelp opens the key binding help for the given keymap contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// Update sends msg to the active popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	t := p.Active()
	if t == None {
		return nil
	}
	var cmd tea.Cmd
	p.popups[t], cmd = p.popups[t].Update(msg)
	return cmd
}

// RenderOverlay draws the open popups over base, lowest priority first.
func (p *Manager) RenderOverlay(base string) string {
	for i := len(Priority) - 1; i >= 0; i-- {
		t := Priority[i]
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		framed := popup.Frame(pop.View(), p.width, p.height, p.sizes[t])
		base = popup.Compose(base, framed, p.width)
	}
	return base
}

// contentSize is the room inside the border and padding.
func (p *Manager) contentSize(t Type) (width, height int) {
	w, h := p.width, p.height
	if s := p.sizes[t]; s.MaxWidth > 0 {
		w = min(w, s.MaxWidth)
	}
	return max(w-6, 0), max(h-4, 0)
}
