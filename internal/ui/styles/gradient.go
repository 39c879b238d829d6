package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Heading renders a bold title with the theme's brand gradient.
func Heading(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary, true)
}

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster so Hangul syllables and emoji are never split.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return style.Foreground(from).Render(text)
	}

	c1, ok1 := parseHex(from)
	c2, ok2 := parseHex(to)
	if !ok1 || !ok2 {
		// ANSI palette colors cannot be blended
		return style.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

func parseHex(c lipgloss.Color) (colorful.Color, bool) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(s)
	return col, err == nil
}
