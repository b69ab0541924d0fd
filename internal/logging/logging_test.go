package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstadnik/AppearanceNotifier/internal/config"
)

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "text"}, &buf)

	log.Info("theme changed", "theme", "dark")
	log.Debug("should be filtered")

	out := buf.String()
	assert.Contains(t, out, "theme changed")
	assert.Contains(t, out, "theme=dark")
	assert.NotContains(t, out, "should be filtered")
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	log.Debug("adapter failed", "adapter", "tmux")

	out := buf.String()
	assert.Contains(t, out, `"adapter":"tmux"`)
	assert.Contains(t, out, `"msg":"adapter failed"`)
}

func TestNewFileOutputCreatesDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "notifier.log")

	log := New(config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "file",
		File:   file,
	})
	log.Info("hello")

	_, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in).String(), tt.in)
	}
}
