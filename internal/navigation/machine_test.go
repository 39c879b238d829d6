package navigation

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/trialsearch/internal/state"
)

func items(targets ...string) []state.ResultItem {
	out := make([]state.ResultItem, len(targets))
	for i, t := range targets {
		out[i] = state.ResultItem{Code: t, Label: "|" + t + "|", Target: t}
	}
	return out
}

func openView(query string, targets ...string) View {
	return View{Open: true, Query: query, Items: items(targets...), Height: 5}
}

func TestHandle_DownEnterCommitsItemTarget(t *testing.T) {
	m := New(0)
	v := openView("당뇨", "당뇨병 제1형", "당뇨병 제2형")
	m.Sync(1, len(v.Items))

	assert.Equal(t, Outcome{Kind: Moved}, m.Handle(Event{Key: KeyDown}, v))
	assert.Equal(t, Outcome{Kind: Commit, Target: "당뇨병 제1형"}, m.Handle(Event{Key: KeyEnter}, v))
}

func TestHandle_EnterWithoutSelectionCommitsQuery(t *testing.T) {
	m := New(0)
	v := openView("asth", "asthma")

	assert.Equal(t, Outcome{Kind: Commit, Target: "asth"}, m.Handle(Event{Key: KeyEnter}, v))
}

func TestHandle_EnterClosedListSubmitsQuery(t *testing.T) {
	m := New(0)

	closed := View{Query: "diabetes"}
	assert.Equal(t, Outcome{Kind: Commit, Target: "diabetes"}, m.Handle(Event{Key: KeyEnter}, closed))

	assert.Equal(t, Outcome{}, m.Handle(Event{Key: KeyEnter}, View{}), "empty query never commits")
}

func TestHandle_ArrowsInactiveWhenClosedOrEmpty(t *testing.T) {
	tests := []struct {
		name string
		view View
	}{
		{"closed", View{Open: false, Query: "a", Items: items("x", "y")}},
		{"open but empty", View{Open: true, Query: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(0)
			assert.Equal(t, Outcome{}, m.Handle(Event{Key: KeyDown}, tt.view))
			assert.Equal(t, Outcome{}, m.Handle(Event{Key: KeyUp}, tt.view))
			_, ok := m.Selected()
			assert.False(t, ok)
		})
	}
}

func TestHandle_EscapeClearsFromAnyState(t *testing.T) {
	for _, downs := range []int{0, 1, 2, 3} {
		m := New(0)
		v := openView("flu", "a", "b", "c")
		for range downs {
			m.Handle(Event{Key: KeyDown}, v)
		}

		assert.Equal(t, Outcome{Kind: Clear}, m.Handle(Event{Key: KeyEscape}, v))
		_, ok := m.Selected()
		assert.False(t, ok, "selection after escape with %d downs", downs)
	}

	m := New(0)
	assert.Equal(t, Outcome{Kind: Clear}, m.Handle(Event{Key: KeyEscape}, View{}))
}

func TestHandle_ComposingSuppressesEverything(t *testing.T) {
	m := New(0)
	v := openView("당", "당뇨")
	m.Handle(Event{Key: KeyDown}, v)

	for _, k := range []Key{KeyDown, KeyUp, KeyEnter, KeyEscape} {
		assert.Equal(t, Outcome{}, m.Handle(Event{Key: k, Composing: true}, v))
	}
	i, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}

func TestHandle_UpWrapsFromNone(t *testing.T) {
	m := New(0)
	v := openView("x", "a", "b", "c")

	m.Handle(Event{Key: KeyUp}, v)
	i, _ := m.Selected()
	assert.Equal(t, 2, i)

	m.Handle(Event{Key: KeyDown}, v)
	i, _ = m.Selected()
	assert.Equal(t, 0, i)
}

func TestSync_NewResultSetResetsSelection(t *testing.T) {
	m := New(0)
	v := openView("a", "x", "y")
	m.Sync(1, 2)
	m.Handle(Event{Key: KeyDown}, v)
	m.Handle(Event{Key: KeyDown}, v)

	m.Sync(1, 2)
	i, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	m.Sync(2, 2)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestHoverAndClick(t *testing.T) {
	m := New(0)
	v := openView("a", "x", "y", "z")

	assert.Equal(t, Outcome{Kind: Moved}, m.Hover(2, v))
	assert.Equal(t, Outcome{}, m.Hover(2, v), "hovering the same row is not a move")
	assert.Equal(t, Outcome{}, m.Hover(7, v))
	i, _ := m.Selected()
	assert.Equal(t, 2, i)

	assert.Equal(t, Outcome{Kind: Commit, Target: "y"}, m.Click(1, v))
	assert.Equal(t, Outcome{}, m.Click(1, View{Items: v.Items}), "closed list ignores clicks")
}

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want Event
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, Event{Key: KeyDown}},
		{tea.KeyMsg{Type: tea.KeyUp}, Event{Key: KeyUp}},
		{tea.KeyMsg{Type: tea.KeyEnter}, Event{Key: KeyEnter}},
		{tea.KeyMsg{Type: tea.KeyEsc}, Event{Key: KeyEscape}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, Event{Key: KeyNone}},
		{tea.KeyMsg{Type: tea.KeyEnter, Paste: true}, Event{Key: KeyEnter, Composing: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromKeyMsg(tt.msg))
	}
}
