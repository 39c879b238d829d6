package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/app/popupctl"
	"github.com/llehouerou/trialsearch/internal/search"
	"github.com/llehouerou/trialsearch/internal/ui/action"
	"github.com/llehouerou/trialsearch/internal/ui/helpbindings"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case search.ResolvedMsg:
		if !m.opts.Search.Apply(msg) {
			return m, nil
		}
		return m.forward(shell.Refresh{})

	case QueryChangedMsg, ResultChangedMsg:
		// Shells re-read both slices on every update.
		next, cmd := m.forward(shell.Refresh{})
		return next, tea.Batch(cmd, m.watchStore())

	case RecordChangedMsg:
		m.diseases = len(msg.Items)
		return m, m.watchStore()

	case StoreClosedMsg:
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.Popups.Active() != popupctl.None {
			return m, nil
		}
	}
	return m.forward(msg)
}

// forward hands msg to the mounted shell.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Shell, cmd = m.Shell.Update(msg)
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil

	case shell.Commit:
		m.logger.Info("navigating",
			zap.String("source", msg.Source),
			zap.String("target", a.Target),
			zap.String("url", a.URL),
		)
		m.commit = &a
		m.Close()
		return m, tea.Quit
	}

	m.logger.Debug("unhandled action",
		zap.String("source", msg.Source),
		zap.String("type", msg.Action.ActionType()),
	)
	return m, nil
}
