// Package input turns raw keystrokes into committed queries.
package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/debounce"
	"github.com/llehouerou/trialsearch/internal/state"
)

// Mode selects when the query reaches the store.
type Mode int

const (
	// Deferred debounces the query itself: the store and the search see the
	// text only after the quiescence window.
	Deferred Mode = iota
	// Immediate writes every keystroke to the store and debounces only the
	// search.
	Immediate
)

const (
	DefaultDeferredDelay  = time.Second
	DefaultImmediateDelay = 300 * time.Millisecond
)

// Searcher starts a search for a committed query.
type Searcher interface {
	Search(query string) tea.Cmd
}

// EmittedMsg is delivered when the debouncer fires.
type EmittedMsg struct {
	debounce.Emission
	from *Controller
}

// Controller owns one debouncer for the lifetime of a shell.
type Controller struct {
	mode   Mode
	store  state.QueryWriter
	search Searcher
	deb    *debounce.Debouncer
}

// New creates a controller. A zero delay uses the mode default and a
// negative one disables debouncing.
func New(mode Mode, delay time.Duration, store state.QueryWriter, search Searcher) *Controller {
	switch {
	case delay < 0:
		delay = 0
	case delay == 0:
		delay = DefaultDeferredDelay
		if mode == Immediate {
			delay = DefaultImmediateDelay
		}
	}
	return &Controller{
		mode:   mode,
		store:  store,
		search: search,
		deb:    debounce.New(delay),
	}
}

// Mode returns the controller mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Delay returns the quiescence window.
func (c *Controller) Delay() time.Duration {
	return c.deb.Delay()
}

// Pending reports whether an emission is scheduled.
func (c *Controller) Pending() bool {
	return c.deb.Pending()
}

// OnRawInput records a keystroke.
func (c *Controller) OnRawInput(text string) tea.Cmd {
	if c.mode == Deferred {
		c.deb.Push(text)
		return nil
	}

	c.store.SetQuery(text)
	if text == "" {
		c.deb.Cancel()
		return c.search.Search("")
	}
	c.deb.Push(text)
	return nil
}

// Wait returns a command that delivers the next emission as an EmittedMsg.
// It yields nil once the controller is closed. Re-arm it after each
// EmittedMsg.
func (c *Controller) Wait() tea.Cmd {
	ch, done := c.deb.C(), c.deb.Done()
	return func() tea.Msg {
		select {
		case e := <-ch:
			return EmittedMsg{Emission: e, from: c}
		case <-done:
			return nil
		}
	}
}

// Handle commits an emission and re-arms Wait. Emissions superseded by a
// later keystroke or a Clear are ignored.
func (c *Controller) Handle(msg EmittedMsg) tea.Cmd {
	if msg.from != nil && msg.from != c {
		// Left over from a shell that was replaced.
		return nil
	}
	if !c.deb.Fresh(msg.Emission) {
		return c.Wait()
	}
	if c.mode == Deferred {
		c.store.SetQuery(msg.Text)
	}
	return tea.Batch(c.search.Search(msg.Text), c.Wait())
}

// Clear drops any pending emission and empties the query.
func (c *Controller) Clear() tea.Cmd {
	c.deb.Cancel()
	c.store.SetQuery("")
	return c.search.Search("")
}

// Submit commits text right away, bypassing the quiescence window.
func (c *Controller) Submit(text string) tea.Cmd {
	c.deb.Cancel()
	c.store.SetQuery(text)
	return c.search.Search(text)
}

// Close stops the debouncer. Nothing is emitted afterwards.
func (c *Controller) Close() {
	c.deb.Close()
}
