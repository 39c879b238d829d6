// Package shell holds what the desktop and mobile presentations share: the
// Shell contract, the commit action and the search core both embed.
package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/input"
	"github.com/llehouerou/trialsearch/internal/navigate"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/action"
)

// Shell is one presentation of the search widget. Only one is mounted at
// a time; each owns its selection and its debouncer.
type Shell interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Shell, tea.Cmd)
	View() string
	SetSize(width, height int)
	// Close stops the shell's debouncer. The shell must not be used after.
	Close()
	// Query returns the text currently in the field.
	Query() string
	// Contexts lists the keymap contexts active in the current state.
	Contexts() []string
}

// Store is what a shell reads and writes in the shared state.
type Store interface {
	state.Reader
	SetQuery(q string)
}

// Deps wires a shell to the rest of the program.
type Deps struct {
	Store      Store
	Search     input.Searcher
	Parser     highlight.Parser
	BaseURL    string
	Debounce   time.Duration
	MaxVisible int
	Labels     Labels
	Now        func() time.Time
}

// Commit asks the program to leave for the trial search page.
type Commit struct {
	Target string
	URL    string
}

// ActionType implements action.Action.
func (Commit) ActionType() string { return "shell.commit" }

// CommitCmd emits a Commit for target on behalf of source.
func CommitCmd(source, baseURL, target string) tea.Cmd {
	c := Commit{Target: target, URL: navigate.URL(baseURL, target)}
	return func() tea.Msg {
		return action.Msg{Source: source, Action: c}
	}
}

// Refresh makes a shell re-read the store. The app sends it when the
// store's query or request state changes.
type Refresh struct{}
