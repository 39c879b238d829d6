// Package layout provides pure functions for UI dimension calculations.
package layout

// Mode is the presentation shell in use.
type Mode int

const (
	Desktop Mode = iota
	Mobile
)

func (m Mode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// DefaultBreakpoint is the terminal width below which the mobile shell is
// used when the layout is automatic.
const DefaultBreakpoint = 60

// FooterHeight is the status line under the shell.
const FooterHeight = 1

// Choose picks the shell for a terminal width. forced is "desktop",
// "mobile" or anything else for automatic.
func Choose(forced string, width, breakpoint int) Mode {
	switch forced {
	case "desktop":
		return Desktop
	case "mobile":
		return Mobile
	}
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > 0 && width < breakpoint {
		return Mobile
	}
	return Desktop
}

// Toggle returns the other mode.
func Toggle(m Mode) Mode {
	if m == Mobile {
		return Desktop
	}
	return Mobile
}

// ShellHeight is the height left for the shell once the footer is drawn.
func ShellHeight(windowHeight int) int {
	return max(windowHeight-FooterHeight, 0)
}

// Rows returns how many list rows fit in the height below top once the
// panel chrome is drawn.
func Rows(height, top, overhead int) int {
	return max(height-top-overhead, 0)
}

// ListWidth clamps the list width to the window, keeping a minimum.
func ListWidth(windowWidth, maxWidth, minWidth int) int {
	w := windowWidth
	if maxWidth > 0 {
		w = min(w, maxWidth)
	}
	return max(w, minWidth)
}
