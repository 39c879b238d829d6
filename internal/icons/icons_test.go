package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init("none") })

	tests := []struct {
		style string
		want  Icons
	}{
		{"nerd", nerdIcons},
		{"unicode", unicodeIcons},
		{"none", noneIcons},
		{"", noneIcons},
		{"NERD", noneIcons},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			assert.Equal(t, tt.want, Current())
		})
	}
}

func TestDropdown(t *testing.T) {
	t.Cleanup(func() { Init("none") })

	Init("unicode")
	assert.Equal(t, "▾", Dropdown(true))
	assert.Equal(t, "▸", Dropdown(false))
	assert.Equal(t, "←", Back())
}

func TestButton(t *testing.T) {
	t.Cleanup(func() { Init("none") })

	Init("none")
	assert.Equal(t, "검색", Button(Search(), "검색"))
	assert.Equal(t, "<", Button(Back(), ""))

	Init("unicode")
	assert.Equal(t, "🔍 검색", Button(Search(), "검색"))
	assert.Equal(t, "✕", Button(Clear(), ""))
	assert.Equal(t, "검색", Button("", "검색"))
}
