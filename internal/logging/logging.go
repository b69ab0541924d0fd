// Package logging builds the slog logger used by the observer daemon.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/anstadnik/AppearanceNotifier/internal/config"
)

// New creates a logger from the log configuration.
//
// Output modes:
//   - "stderr" (default): logs go to os.Stderr
//   - "file": logs go to a rotating file via lumberjack
func New(cfg config.LogConfig) *slog.Logger {
	var w io.Writer

	switch cfg.Output {
	case "file":
		w = newRotatingWriter(cfg)
	default:
		w = os.Stderr
	}

	return NewWithWriter(cfg, w)
}

// NewWithWriter creates a logger writing to w. Used by tests and by
// New once the output writer is chosen.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// newRotatingWriter builds a lumberjack writer, creating the log
// directory if needed. Falls back to stderr when the file path is
// unusable so logs are never silently lost.
func newRotatingWriter(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		os.Stderr.WriteString("WARNING: log output=file but file path is empty, falling back to stderr\n")
		return os.Stderr
	}

	dir := filepath.Dir(cfg.File)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			os.Stderr.WriteString("WARNING: cannot create log directory " + dir + ", falling back to stderr\n")
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
