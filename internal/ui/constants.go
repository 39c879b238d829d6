// Package ui provides shared UI constants and utilities.
package ui

const (
	// ScrollMargin is the number of suggestions kept visible around the
	// cursor when the list scrolls.
	ScrollMargin = 1

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// InputHeight is the height of a bordered one-line search box.
	InputHeight = 1 + BorderHeight

	// HeaderHeight is the suggestion panel title plus its separator.
	HeaderHeight = 2

	// PanelOverhead is the vertical overhead of the suggestion panel.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinListWidth is the narrowest usable suggestion list.
	MinListWidth = 12
)
