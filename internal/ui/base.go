package ui

// Base carries the size and focus every component needs. Embed it.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool          { return b.focused }

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Size() (width, height int) { return b.width, b.height }
func (b Base) Width() int                { return b.width }
func (b Base) Height() int               { return b.height }

// ListHeight returns the rows left for content after overhead, never
// negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
