package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/app/handler"
	"github.com/llehouerou/trialsearch/internal/app/popupctl"
	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/ui/layout"
)

// handleKeyMsg offers a key to the global bindings, then to the open popup,
// then to the shell.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	noPopup := func() bool { return m.Popups.Active() == popupctl.None }

	if handled, cmd := handler.Chain(msg,
		handler.OnAction(m.keys, keymap.ActionQuit, m.quit),
		handler.When(noPopup, handler.OnAction(m.keys, keymap.ActionHelp, m.showHelp)),
		handler.When(noPopup, handler.OnAction(m.keys, keymap.ActionSwitchLayout, m.toggleLayout)),
		m.handlePopupKey,
	); handled {
		return m, cmd
	}
	return m.forward(msg)
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

func (m *Model) showHelp() tea.Cmd {
	return m.Popups.ShowHelp(m.Shell.Contexts())
}

func (m *Model) toggleLayout() tea.Cmd {
	m.switched = true
	return m.switchTo(layout.Toggle(m.Mode))
}

// handlePopupKey gives every key to the open popup.
func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	if m.Popups.Active() == popupctl.None {
		return handler.NotHandled
	}
	return handler.Handled(m.Popups.Update(msg))
}
