package shell

import tea "github.com/charmbracelet/bubbletea"

// Hotspot is a clickable cell range on one screen row.
type Hotspot struct {
	Row, Col, Width int
}

// Contains reports whether the pointer is over the hotspot.
func (h Hotspot) Contains(msg tea.MouseMsg) bool {
	return h.Width > 0 && msg.Y == h.Row && msg.X >= h.Col && msg.X < h.Col+h.Width
}

// Clicked reports a left press on the hotspot.
func (h Hotspot) Clicked(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		h.Contains(msg)
}
