package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// Size constrains a bordered popup. Zero fields fit the content.
type Size struct {
	MaxWidth  int
	MaxHeight int
}

// Frame wraps content in a rounded border and centers it on a
// screenW x screenH canvas.
func Frame(content string, screenW, screenH int, size Size) string {
	w, h := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(w-2).
		Height(h-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size Size) (w, h int) {
	// padding plus border
	w = maxLineWidth(content) + 6
	h = strings.Count(content, "\n") + 1 + 4

	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth)
	}
	if size.MaxHeight > 0 {
		h = min(h, size.MaxHeight)
	}
	return max(min(w, screenW-4), 6), max(min(h, screenH-2), 4)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// Center places content in the middle of a screenW x screenH canvas.
// Only top and left padding are emitted.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(content))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	indent := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// Compose draws overlay on top of base. Leading spaces of an overlay line
// and blank overlay lines let the base show through. Both inputs may carry
// escape sequences; width is the canvas width in cells.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		startCol := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		endCol := ansi.StringWidth(trimmed)

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		baseLines[i] = splice(under, ansi.Cut(line, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces cells [start, end) of line with content. A wide rune cut
// in half at either edge becomes a space so columns stay aligned.
func splice(line, content string, start, end, width int) string {
	prefix := ansi.Cut(line, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}
	if end >= width {
		return prefix + content
	}

	suffix := ansi.Cut(line, end, width)
	want := width - end
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		suffix = strings.Repeat(" ", want-w) + suffix
	}
	return prefix + content + suffix
}
