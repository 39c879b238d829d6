// Package cursor tracks the selected row of a result list and its scroll
// offset.
package cursor

// None is the position when no row is selected.
const None = -1

// Cursor manages the selection and scroll offset of a result list.
// The list length and viewport height are passed to methods rather than
// stored, since they change with every result set and resize.
//
// The position is None or in [0, n-1]. Down and Up wrap around.
type Cursor struct {
	pos    int
	offset int
	margin int
	setID  uint64 // result set the position belongs to
}

// New creates a cursor with no selection.
func New(margin int) Cursor {
	return Cursor{pos: None, margin: margin}
}

// Pos returns the selected index, or None.
func (c Cursor) Pos() int {
	return c.pos
}

// Selected returns the selected index and whether there is one.
func (c Cursor) Selected() (int, bool) {
	return c.pos, c.pos != None
}

// Offset returns the scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// Down selects the next row: None→0, i→i+1, last→0.
func (c *Cursor) Down(listLen, height int) {
	if listLen == 0 {
		return
	}
	if c.pos == None || c.pos >= listLen-1 {
		c.pos = 0
	} else {
		c.pos++
	}
	c.ensureVisible(listLen, height)
}

// Up selects the previous row: None→last, i→i-1, 0→last.
func (c *Cursor) Up(listLen, height int) {
	if listLen == 0 {
		return
	}
	if c.pos <= 0 || c.pos >= listLen {
		c.pos = listLen - 1
	} else {
		c.pos--
	}
	c.ensureVisible(listLen, height)
}

// Hover selects row i exactly. Out-of-range indices are ignored.
func (c *Cursor) Hover(i, listLen int) {
	if i < 0 || i >= listLen {
		return
	}
	c.pos = i
}

// Reset clears the selection and scroll offset.
func (c *Cursor) Reset() {
	c.pos = None
	c.offset = 0
}

// Sync binds the cursor to a result set. When the identity differs from the
// previous one the selection is cleared; otherwise the position is only
// clamped to the new length.
// Returns true if the selection was reset.
func (c *Cursor) Sync(setID uint64, listLen int) bool {
	if setID != c.setID {
		c.setID = setID
		c.Reset()
		return true
	}
	if c.pos >= listLen {
		c.Reset()
		return true
	}
	return false
}

// EnsureVisible adjusts the scroll offset to keep the selection visible.
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 || c.pos == None {
		return
	}

	// Scroll up: cursor too close to top
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}

	// Scroll down: cursor too close to bottom
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, max(listLen-height, 0))
	end = min(start+height, listLen)
	return start, end
}

// RowAt maps a visible row (0 = first visible line) to a list index.
func (c Cursor) RowAt(row, listLen, height int) (int, bool) {
	start, end := c.VisibleRange(listLen, height)
	i := start + row
	if row < 0 || i >= end {
		return 0, false
	}
	return i, true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
