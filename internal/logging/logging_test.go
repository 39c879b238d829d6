package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/llehouerou/trialsearch/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.name), tt.name)
	}
}

func TestNewWriter_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, zapcore.InfoLevel)

	log.Debug("hidden")
	log.Info("api call", zap.Int64("count", 3), zap.String("query", "당뇨"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "api call", entry["msg"])
	assert.Equal(t, "당뇨", entry["query"])
	assert.InDelta(t, 3, entry["count"], 0)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trialsearch.log")

	log, closeFn, err := New(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	log.Debug("started")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
	assert.Contains(t, string(data), `"pid"`)
}
