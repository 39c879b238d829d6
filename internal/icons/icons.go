// Package icons selects the glyphs used on the search widget's buttons.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for one style.
type Icons struct {
	Search  string
	Back    string
	Clear   string
	Chevron string // dropdown closed
	Expand  string // dropdown open
	Pointer string // selected suggestion
}

var (
	nerdIcons = Icons{
		Search:  "\uf002", // nf-fa-search
		Back:    "\uf060", // nf-fa-arrow_left
		Clear:   "\uf00d", // nf-fa-times
		Chevron: "\uf054", // nf-fa-chevron_right
		Expand:  "\uf078", // nf-fa-chevron_down
		Pointer: "\uf0da", // nf-fa-caret_right
	}

	unicodeIcons = Icons{
		Search:  "🔍",
		Back:    "←",
		Clear:   "✕",
		Chevron: "▸",
		Expand:  "▾",
		Pointer: "›",
	}

	noneIcons = Icons{
		Search:  "search",
		Back:    "<",
		Clear:   "x",
		Chevron: ">",
		Expand:  "v",
		Pointer: ">",
	}

	current = noneIcons
)

// Init selects the icon set. Unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

func Search() string  { return current.Search }
func Back() string    { return current.Back }
func Clear() string   { return current.Clear }
func Pointer() string { return current.Pointer }

// Dropdown returns the toggle glyph for the given dropdown state.
func Dropdown(open bool) string {
	if open {
		return current.Expand
	}
	return current.Chevron
}

// Button formats a clickable label. With the none style a labelled button
// drops its icon.
func Button(icon, label string) string {
	switch {
	case icon == "":
		return label
	case label == "":
		return icon
	case current == noneIcons:
		return label
	}
	return icon + " " + label
}
