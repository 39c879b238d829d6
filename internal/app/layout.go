package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/ui/desktop"
	"github.com/llehouerou/trialsearch/internal/ui/layout"
	"github.com/llehouerou/trialsearch/internal/ui/mobile"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
)

func (m *Model) newShell(mode layout.Mode) shell.Shell {
	d := shell.Deps{
		Store:      m.opts.Store,
		Search:     m.opts.Search,
		Parser:     m.opts.Parser,
		BaseURL:    m.opts.BaseURL,
		MaxVisible: m.opts.MaxVisible,
		Labels:     m.opts.Labels,
	}
	if mode == layout.Mobile {
		d.Debounce = m.opts.MobileDebounce
		return mobile.New(d)
	}
	d.Debounce = m.opts.DesktopDebounce
	return desktop.New(d)
}

// switchTo replaces the mounted shell. The old shell is closed first so its
// debouncer cannot fire into the new one. Text typed but not yet searched
// is carried over and searched.
func (m *Model) switchTo(mode layout.Mode) tea.Cmd {
	if mode == m.Mode {
		return nil
	}
	text := m.Shell.Query()
	m.Shell.Close()

	m.logger.Debug("switching layout",
		zap.Stringer("from", m.Mode),
		zap.Stringer("to", mode),
	)
	m.Mode = mode
	m.Shell = m.newShell(mode)
	m.Shell.SetSize(m.width, layout.ShellHeight(m.height))

	cmds := []tea.Cmd{m.Shell.Init()}
	if text != m.opts.Store.Query() {
		cmds = append(cmds, m.prefill(text))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)

	var cmd tea.Cmd
	if !m.switched {
		cmd = m.switchTo(layout.Choose(m.opts.Layout, msg.Width, m.opts.Breakpoint))
	}
	m.Shell.SetSize(m.width, layout.ShellHeight(m.height))
	return m, cmd
}
