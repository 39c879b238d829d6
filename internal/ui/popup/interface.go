// Package popup provides modal overlays drawn on top of a shell.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component that owns the keyboard while open.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without border or centering.
	View() string
	SetSize(width, height int)
}
