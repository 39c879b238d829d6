package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/trialsearch/internal/highlight"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "diabetes", "diabetes"},
		{"clean hangul", "당뇨병", "당뇨병"},
		{"control chars dropped", "a\x1b[31mb\x07", "a[31mb"},
		{"newline dropped", "type\n2", "type2"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"c1 control dropped", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"wide characters", "당뇨병제2형", 7, "당뇨병…"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("당뇨", 6)
	if got != "당뇨  " {
		t.Errorf("TruncateAndPad = %q", got)
	}
	if w := lipgloss.Width(TruncateAndPad("hello world", 6)); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("tight Row = %q, want minimum gap of 1", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abcdef", 3); got != "abcdef" {
		t.Errorf("Center overflow = %q", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if Separator(-1) != "" || EmptyLine(-1) != "" {
		t.Error("negative widths must render empty")
	}
}

func TestLabel(t *testing.T) {
	st := LabelStyles{Plain: lipgloss.NewStyle(), Match: lipgloss.NewStyle().Bold(true)}

	tests := []struct {
		name   string
		label  string
		parser highlight.Parser
		width  int
		want   string
	}{
		{"plain", "asthma", highlight.Default, 20, "asthma"},
		{"matched", "|diab|etes", highlight.Default, 20, "diabetes"},
		{"legacy separator", "|당뇨|,병", highlight.Legacy, 20, "당뇨병"},
		{"unterminated marker", "|diabetes", highlight.Default, 20, "diabetes"},
		{"truncated", "|diab|etes mellitus", highlight.Default, 10, "diabetes …"},
		{"exact fit", "|ab|cd", highlight.Default, 4, "abcd"},
		{"zero width", "abc", highlight.Default, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Label(tt.label, tt.parser, st, tt.width))
			if got != tt.want {
				t.Errorf("Label(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
			}
		})
	}
}
