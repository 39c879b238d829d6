package shell

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/trialsearch/internal/errmsg"
	"github.com/llehouerou/trialsearch/internal/input"
	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/navigate"
	"github.com/llehouerou/trialsearch/internal/navigation"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui"
	"github.com/llehouerou/trialsearch/internal/ui/list"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// Core is the search machinery both shells embed: the text field, the
// spinner, the suggestion list and the input controller.
type Core struct {
	ui.Base
	Field   textinput.Model
	Spinner spinner.Model
	List    list.Model

	deps   Deps
	source string
	ctrl   *input.Controller
	result state.RequestState
}

// NewCore creates the core of a shell. The field starts with the query
// already in the store so switching shells keeps the text.
func NewCore(source string, mode input.Mode, d Deps) Core {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.BaseURL == "" {
		d.BaseURL = navigate.DefaultBaseURL
	}

	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = d.Labels.Placeholder
	field.SetValue(d.Store.Query())
	field.Focus()

	c := Core{
		Field: field,
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(styles.T().S().Match),
		),
		List:   list.New(d.Parser, d.MaxVisible),
		deps:   d,
		source: source,
		ctrl:   input.New(mode, d.Debounce, d.Store, d.Search),
	}
	c.Sync()
	return c
}

// Init starts the cursor blink and arms the debouncer.
func (c *Core) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, c.ctrl.Wait())
}

// Close stops the debouncer.
func (c *Core) Close() {
	c.ctrl.Close()
}

func (c *Core) Source() string                { return c.source }
func (c *Core) Labels() Labels                { return c.deps.Labels }
func (c *Core) Result() state.RequestState    { return c.result }
func (c *Core) Controller() *input.Controller { return c.ctrl }
func (c *Core) Query() string                 { return c.Field.Value() }

// Prefill puts text in the field and searches it right away.
func (c *Core) Prefill(text string) tea.Cmd {
	c.Field.SetValue(text)
	c.Field.CursorEnd()
	return c.ctrl.Submit(text)
}

// HandleShared handles the messages every shell treats the same way.
func (c *Core) HandleShared(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case input.EmittedMsg:
		return c.ctrl.Handle(msg), true
	case spinner.TickMsg:
		if c.result.Status != state.StatusLoading {
			return nil, true
		}
		var cmd tea.Cmd
		c.Spinner, cmd = c.Spinner.Update(msg)
		return cmd, true
	case Refresh:
		return nil, true
	}
	return nil, false
}

// UpdateField forwards msg to the text field and reports a changed value
// to the input controller.
func (c *Core) UpdateField(msg tea.Msg) tea.Cmd {
	before := c.Field.Value()
	var cmd tea.Cmd
	c.Field, cmd = c.Field.Update(msg)
	if after := c.Field.Value(); after != before {
		return tea.Batch(cmd, c.ctrl.OnRawInput(after))
	}
	return cmd
}

// Sync reads the request state from the store and updates the list. It
// returns the spinner tick when a request just started.
func (c *Core) Sync() tea.Cmd {
	r := c.deps.Store.ResultState()
	started := r.Status == state.StatusLoading && c.result.Status != state.StatusLoading
	c.result = r

	if r.Status == state.StatusSuccess {
		c.List.SetItems(r.Results.ID, r.Results.Items)
	} else {
		c.List.Clear()
	}

	if started {
		return c.Spinner.Tick
	}
	return nil
}

// Event turns a resolved key into a navigation event.
func Event(a keymap.Action, msg tea.KeyMsg) navigation.Event {
	ev := navigation.Event{Composing: msg.Paste}
	switch a {
	case keymap.ActionMoveDown:
		ev.Key = navigation.KeyDown
	case keymap.ActionMoveUp:
		ev.Key = navigation.KeyUp
	case keymap.ActionSelect:
		ev.Key = navigation.KeyEnter
	case keymap.ActionClear:
		ev.Key = navigation.KeyEscape
	}
	return ev
}

// Navigate applies a navigation event to the list.
func (c *Core) Navigate(ev navigation.Event) tea.Cmd {
	return c.apply(c.List.HandleKey(ev, c.Field.Value()))
}

// Mouse applies a mouse event to the list; top is the screen row of the
// first suggestion.
func (c *Core) Mouse(msg tea.MouseMsg, top int) tea.Cmd {
	return c.apply(c.List.HandleMouse(msg, top, c.Field.Value()))
}

func (c *Core) apply(out navigation.Outcome) tea.Cmd {
	switch out.Kind {
	case navigation.Commit:
		return CommitCmd(c.source, c.deps.BaseURL, out.Target)
	case navigation.Clear:
		return c.Clear()
	}
	return nil
}

// Clear empties the field, the query and the selection.
func (c *Core) Clear() tea.Cmd {
	c.Field.SetValue("")
	c.List.Clear()
	return c.ctrl.Clear()
}

// Submit commits the typed text, ignoring the selection.
func (c *Core) Submit() tea.Cmd {
	text := c.Field.Value()
	if text == "" {
		return nil
	}
	return CommitCmd(c.source, c.deps.BaseURL, text)
}

// Status describes the request state in one line: spinner while loading,
// the failure reason, or the result count and its age.
func (c *Core) Status() string {
	s := styles.T().S()
	l := c.deps.Labels
	r := c.result

	switch r.Status {
	case state.StatusLoading:
		return c.Spinner.View() + " " + s.Muted.Render(l.Loading)
	case state.StatusError:
		return s.Error.Render(l.Failed + ": " + errmsg.Reason(r.Err))
	case state.StatusSuccess:
		text := fmt.Sprintf(l.Results, humanize.Comma(int64(r.Results.TotalCount)))
		if !r.FetchedAt.IsZero() {
			text += " · " + humanize.RelTime(r.FetchedAt, c.deps.Now(), "ago", "from now")
		}
		if r.Cached {
			text += " · " + l.Cached
		}
		return s.Subtle.Render(text)
	}
	return ""
}
