package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "당뇨병", "당뇨병"},
		{"sgr", "\x1b[31m당뇨\x1b[0m병", "당뇨병"},
		{"truecolor", "\x1b[1;38;2;0;123;233mdiabetes\x1b[0m", "diabetes"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "제1형 당뇨병", NormalizeWhitespace("  제1형\t\n 당뇨병  "))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 6, MeasureWidth("\x1b[1m당뇨병\x1b[0m"))
	assert.Equal(t, 3, MeasureWidth("abc"))
}

func TestLineHelpers(t *testing.T) {
	output := "추천 검색어\n당뇨병\n\n고혈압\n\n"

	assert.True(t, ContainsLine(output, "당뇨"))
	assert.False(t, ContainsLine(output, "암"))
	assert.Equal(t, "고혈압", FindLine(output, "혈압"))
	assert.Empty(t, FindLine(output, "missing"))
	assert.Equal(t, 3, CountLines(output))
	assert.Equal(t, []string{"추천 검색어", "당뇨병", "", "고혈압"}, SplitLines(output))
}

func TestAssertContains(t *testing.T) {
	output := "\x1b[1m데이터 로딩 중...\x1b[0m"

	assert.Empty(t, AssertContains(output, "로딩"))
	assert.NotEmpty(t, AssertContains(output, "없습니다"))
	assert.Empty(t, AssertNotContains(output, "없습니다"))
	assert.NotEmpty(t, AssertNotContains(output, "로딩"))
}
