package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/trialsearch/internal/keymap"
	"github.com/llehouerou/trialsearch/internal/ui/action"
	"github.com/llehouerou/trialsearch/internal/ui/testutil"
)

var allContexts = []string{
	keymap.ContextGlobal,
	keymap.ContextList,
	keymap.ContextDesktop,
	keymap.ContextMobile,
}

func newHelp(t *testing.T, height int, contexts ...string) (*Model, *testutil.PopupHarness) {
	t.Helper()
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func TestHelpBindings_Close(t *testing.T) {
	keys := map[string]tea.KeyMsg{
		"esc": {Type: tea.KeyEscape},
		"q":   {Type: tea.KeyRunes, Runes: []rune("q")},
		"f1":  {Type: tea.KeyF1},
	}
	for name, key := range keys {
		t.Run(name, func(t *testing.T) {
			_, h := newHelp(t, 16, keymap.ContextGlobal)

			cmd := h.SendMsg(key)
			require.NotNil(t, cmd)
			msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
			require.True(t, ok)
			assert.Equal(t, "helpbindings", msg.Source)
			assert.IsType(t, Close{}, msg.Action)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newHelp(t, 16, allContexts...)

	h.SendDown()
	h.SendKey("j")
	h.SendDown()
	assert.Equal(t, 3, m.scrollOffset)

	h.SendKey("k")
	h.SendUp()
	assert.Equal(t, 1, m.scrollOffset)

	h.SendUp()
	h.SendUp()
	assert.Zero(t, m.scrollOffset)
}

func TestHelpBindings_ScrollStopsAtEnd(t *testing.T) {
	m, h := newHelp(t, 16, allContexts...)

	for range 100 {
		h.SendDown()
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	assert.Positive(t, m.scrollOffset)
	assert.True(t, h.ViewContains("Mobile") || h.ViewContains("Search typed text"))
}

func TestHelpBindings_ShortContentDoesNotScroll(t *testing.T) {
	m, h := newHelp(t, 40, keymap.ContextGlobal)

	h.SendDown()
	assert.Zero(t, m.scrollOffset)
	assert.Empty(t, h.AssertViewNotContains("scroll"))
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newHelp(t, 100, allContexts...)

	for _, want := range []string{"Help", "Global", "Suggestions", "Desktop", "Mobile", "ctrl+c", "f1/esc close"} {
		assert.Empty(t, h.AssertViewContains(want))
	}
}

func TestHelpBindings_CategoryOrderIsFixed(t *testing.T) {
	_, h := newHelp(t, 100, keymap.ContextMobile, keymap.ContextGlobal)

	view := testutil.StripANSI(h.View())
	assert.Less(t, strings.Index(view, "Global"), strings.Index(view, "Mobile"))
	assert.NotContains(t, view, "Suggestions")
}

func TestHelpBindings_EmptyWithoutSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{keymap.ContextGlobal})
	assert.Empty(t, m.View())
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	m, h := newHelp(t, 16, allContexts...)
	h.SendDown()
	require.Positive(t, m.scrollOffset)

	m.SetContexts([]string{keymap.ContextGlobal})
	assert.Zero(t, m.scrollOffset)
}
