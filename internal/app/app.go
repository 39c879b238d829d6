// Package app is the root bubbletea model: it mounts one presentation
// shell, routes search results into the store and draws the footer and
// popups around the shell.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/app/popupctl"
	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/input"
	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/search"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/layout"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
)

// Searcher is the coordinator as seen by the app: shells start searches
// and the app applies their results.
type Searcher interface {
	input.Searcher
	Apply(msg search.ResolvedMsg) bool
}

// Options wires the app.
type Options struct {
	Store           *state.Store
	Search          Searcher
	Parser          highlight.Parser
	Labels          shell.Labels
	BaseURL         string
	Layout          string // "auto", "desktop" or "mobile"
	Breakpoint      int
	MaxVisible      int
	DesktopDebounce time.Duration
	MobileDebounce  time.Duration
	Query           string // searched on start
	Logger          *zap.Logger
}

// Model is the root application model.
type Model struct {
	Shell  shell.Shell
	Mode   layout.Mode
	Popups *popupctl.Manager

	opts     Options
	keys     *keymap.Resolver
	switched bool // F2 was used; the width no longer picks the shell
	sub      *state.Subscription
	unsub    func()
	diseases int
	commit   *shell.Commit
	width    int
	height   int
	logger   *zap.Logger
}

// New creates the app. The shell is picked from the configured layout;
// with "auto" it is revisited on every resize.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Parser == (highlight.Parser{}) {
		opts.Parser = highlight.Default
	}
	sub, unsub := opts.Store.Subscribe()

	m := Model{
		Popups: popupctl.New(),
		opts:   opts,
		keys:   keymap.ForContexts(keymap.ContextGlobal),
		sub:    sub,
		unsub:  unsub,
		logger: opts.Logger,
	}
	m.Mode = layout.Choose(opts.Layout, 0, opts.Breakpoint)
	m.Shell = m.newShell(m.Mode)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Shell.Init(), m.watchStore()}
	if m.opts.Query != "" {
		cmds = append(cmds, m.prefill(m.opts.Query))
	}
	return tea.Batch(cmds...)
}

// Committed returns the navigation the user chose, if any.
func (m Model) Committed() (shell.Commit, bool) {
	if m.commit == nil {
		return shell.Commit{}, false
	}
	return *m.commit, true
}

// Diseases is the size of the last published disease record.
func (m Model) Diseases() int {
	return m.diseases
}

// Close releases the shell and the store subscription.
func (m Model) Close() {
	m.Shell.Close()
	m.unsub()
}
