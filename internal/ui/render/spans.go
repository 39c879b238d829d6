package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/trialsearch/internal/highlight"
)

// LabelStyles styles the two span kinds of a suggestion label.
type LabelStyles struct {
	Plain lipgloss.Style
	Match lipgloss.Style
}

// Label renders a marked-up label within maxWidth columns. Matched spans use
// the Match style; the label is cut with an ellipsis when it does not fit.
func Label(label string, p highlight.Parser, st LabelStyles, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	fullWidth := runewidth.StringWidth(p.Strip(Sanitize(label)))

	var b strings.Builder
	used := 0
	for span := range p.Spans(Sanitize(label)) {
		style := st.Plain
		if span.Kind == highlight.Matched {
			style = st.Match
		}

		text := span.Text
		w := runewidth.StringWidth(text)
		if fullWidth > maxWidth && used+w > maxWidth-1 {
			text = runewidth.Truncate(text, maxWidth-used, "…")
			b.WriteString(style.Render(text))
			return b.String()
		}
		b.WriteString(style.Render(text))
		used += w
	}
	return b.String()
}
