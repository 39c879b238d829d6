// Package handler chains key handlers: the first one that claims a key wins.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/keymap"
)

// Result is the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on.
var NotHandled = Result{}

// HandledNoCmd claims the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(msg tea.KeyMsg) Result

// Chain offers msg to handlers in order until one handles it.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

// OnAction handles the keys r resolves to a by running fn.
func OnAction(r *keymap.Resolver, a keymap.Action, fn func() tea.Cmd) Handler {
	return func(msg tea.KeyMsg) Result {
		if r.Resolve(msg.String()) != a {
			return NotHandled
		}
		return Handled(fn())
	}
}

// When guards h: while cond is false every key passes through.
func When(cond func() bool, h Handler) Handler {
	return func(msg tea.KeyMsg) Result {
		if !cond() {
			return NotHandled
		}
		return h(msg)
	}
}
