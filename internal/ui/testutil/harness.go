package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/trialsearch/internal/ui/popup"
)

// Model is any component whose Update returns its own interface type, such
// as popup.Popup or a presentation shell.
type Model[T any] interface {
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Harness drives a component in tests and records the commands it returns.
type Harness[T Model[T]] struct {
	model T
	cmds  []tea.Cmd
}

// PopupHarness drives a popup.
type PopupHarness = Harness[popup.Popup]

// NewHarness wraps m. init, when non-nil, is recorded as the first command.
func NewHarness[T Model[T]](m T, init tea.Cmd) *Harness[T] {
	h := &Harness[T]{model: m}
	if init != nil {
		h.cmds = append(h.cmds, init)
	}
	return h
}

// NewPopupHarness creates a harness for a popup and records its Init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	return NewHarness(p, p.Init())
}

// Model returns the current model.
func (h *Harness[T]) Model() T {
	return h.model
}

// Popup returns the current model. Kept for popup tests.
func (h *Harness[T]) Popup() T {
	return h.model
}

// SetSize resizes the model.
func (h *Harness[T]) SetSize(width, height int) {
	h.model.SetSize(width, height)
}

// View renders the model.
func (h *Harness[T]) View() string {
	return h.model.View()
}

// SendMsg delivers msg and returns the resulting command.
func (h *Harness[T]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends key as typed runes.
func (h *Harness[T]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Type sends text one rune at a time and returns the last command.
func (h *Harness[T]) Type(text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		cmd = h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

// Paste sends text as a bracketed paste.
func (h *Harness[T]) Paste(text string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true})
}

// SendSpecialKey sends a non-rune key.
func (h *Harness[T]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *Harness[T]) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *Harness[T]) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *Harness[T]) SendUp() tea.Cmd     { return h.SendSpecialKey(tea.KeyUp) }
func (h *Harness[T]) SendDown() tea.Cmd   { return h.SendSpecialKey(tea.KeyDown) }
func (h *Harness[T]) SendTab() tea.Cmd    { return h.SendSpecialKey(tea.KeyTab) }

// Commands returns the recorded commands.
func (h *Harness[T]) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *Harness[T]) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands forgets the recorded commands.
func (h *Harness[T]) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs cmd and returns its message. Batches are flattened and
// the messages of their non-nil members are returned as a slice.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return msg
	}
	var msgs []tea.Msg
	for _, c := range batch {
		if m := ExecuteCmd(c); m != nil {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// ExecuteAndSend runs cmd and delivers its message back to the model.
func (h *Harness[T]) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	return msg, h.SendMsg(msg)
}

// ViewContains reports whether any rendered line contains substr.
func (h *Harness[T]) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns a failure message if the view lacks substr.
func (h *Harness[T]) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns a failure message if the view has substr.
func (h *Harness[T]) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
