package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/trialsearch/internal/keymap"
)

var f1 = tea.KeyMsg{Type: tea.KeyF1}

func TestChain_Empty(t *testing.T) {
	handled, cmd := Chain(f1)
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestChain_FirstClaimWins(t *testing.T) {
	var calls []string
	record := func(name string, r Result) Handler {
		return func(tea.KeyMsg) Result {
			calls = append(calls, name)
			return r
		}
	}
	want := func() tea.Msg { return "second" }

	handled, cmd := Chain(f1,
		record("first", NotHandled),
		record("second", Handled(want)),
		record("third", HandledNoCmd),
	)

	assert.True(t, handled)
	assert.Equal(t, "second", cmd())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChain_HandledWithoutCommand(t *testing.T) {
	handled, cmd := Chain(f1, func(tea.KeyMsg) Result { return HandledNoCmd })
	assert.True(t, handled)
	assert.Nil(t, cmd)
}

func TestOnAction(t *testing.T) {
	r := keymap.ForContexts(keymap.ContextGlobal)
	fired := 0
	h := OnAction(r, keymap.ActionHelp, func() tea.Cmd {
		fired++
		return nil
	})

	assert.Equal(t, HandledNoCmd, h(f1))
	assert.Equal(t, NotHandled, h(tea.KeyMsg{Type: tea.KeyF2}))
	assert.Equal(t, NotHandled, h(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}))
	assert.Equal(t, 1, fired)
}

func TestWhen(t *testing.T) {
	enabled := false
	h := When(func() bool { return enabled }, func(tea.KeyMsg) Result { return HandledNoCmd })

	assert.Equal(t, NotHandled, h(f1))
	enabled = true
	assert.Equal(t, HandledNoCmd, h(f1))
}
