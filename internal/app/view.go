package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/trialsearch/internal/ui/layout"
	"github.com/llehouerou/trialsearch/internal/ui/render"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	view := enforceHeight(m.Shell.View(), layout.ShellHeight(m.height))
	view += "\n" + m.renderFooter()
	view = m.Popups.RenderOverlay(view)
	return enforceHeight(view, m.height)
}

// renderFooter shows how many diseases the last search matched and the
// layout in use.
func (m Model) renderFooter() string {
	s := styles.T().S()
	l := m.opts.Labels

	left := ""
	if m.diseases > 0 {
		left = fmt.Sprintf(l.Record, humanize.Comma(int64(m.diseases)))
	}
	right := m.Mode.String() + " · " + l.Switch
	return s.Subtle.Render(render.Row(left, right, m.width))
}

// enforceHeight pads or cuts view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) < height:
		lines = append(lines, make([]string, height-len(lines))...)
	case len(lines) > height:
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
