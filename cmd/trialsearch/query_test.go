package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/trialsearch/internal/config"
	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/navigate"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/testutil"
)

const base = "https://trials.test/search?q="

var diabetes = state.ResultSet{
	ID:         1,
	Query:      "당뇨",
	TotalCount: 1204,
	Items: []state.ResultItem{
		{Code: "E10", Label: "제1형 |당뇨|병", Target: "제1형 당뇨병"},
		{Code: "E11", Label: "제2형 |당뇨|병", Target: "제2형 당뇨병"},
	},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, diabetes, highlight.Default, base))

	var got jsonResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "당뇨", got.Query)
	assert.Equal(t, 1204, got.TotalCount)
	require.Len(t, got.Items, 2)
	assert.Equal(t, jsonItem{
		Code:  "E10",
		Name:  "제1형 당뇨병",
		Label: "제1형 당뇨병",
		URL:   base + "제1형 당뇨병",
	}, got.Items[0])
}

func TestWriteJSON_EmptyItemsIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, state.ResultSet{Query: "diabetes"}, highlight.Default, base))
	assert.Contains(t, buf.String(), `"items": []`)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, diabetes, highlight.Default, base))

	lines := strings.Split(strings.TrimSpace(testutil.StripANSI(buf.String())), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2 of 1,204 diseases", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "E10    "))
	assert.Contains(t, lines[1], "제1형 당뇨병")
	assert.Contains(t, lines[2], base+"제2형 당뇨병")
	assert.NotContains(t, lines[1], "|")
}

func TestWriteText_NoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, state.ResultSet{Query: "diabetes"}, highlight.Default, base))
	assert.Equal(t, "no diseases match \"diabetes\"\n", buf.String())
}

func TestOpener(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, navigate.WriterOpener{}, opener(config.OpenPrint, &buf))
	assert.IsType(t, navigate.BrowserOpener{}, opener(config.OpenBrowser, &buf))
}

func TestQueryCommandRequiresText(t *testing.T) {
	assert.Error(t, queryCmd.Args(queryCmd, nil))
	assert.NoError(t, queryCmd.Args(queryCmd, []string{"당뇨"}))
}
