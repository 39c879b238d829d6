package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns the bordered box used for the dropdown and the mobile
// overlay.
func Panel(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// InputBox is the bordered search field.
func InputBox(focused bool) lipgloss.Style {
	return Panel(focused).Padding(0, 1)
}
