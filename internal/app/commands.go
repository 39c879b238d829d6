package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// watchStore waits for the next change to the query, the request state or
// the disease record. Re-arm it after each change message.
func (m Model) watchStore() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case q := <-sub.QueryChanged:
			return QueryChangedMsg{Query: q}
		case r := <-sub.ResultChanged:
			return ResultChangedMsg{State: r}
		case items := <-sub.RecordChanged:
			return RecordChangedMsg{Items: items}
		case <-sub.Done:
			return StoreClosedMsg{}
		}
	}
}

type prefiller interface {
	Prefill(text string) tea.Cmd
}

// prefill puts text in the shell and searches it right away.
func (m Model) prefill(text string) tea.Cmd {
	if p, ok := m.Shell.(prefiller); ok {
		return p.Prefill(text)
	}
	return nil
}
