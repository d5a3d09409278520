// Package logging builds the process slog.Logger from config.Logging.
// With a logfile configured, records go to a size- and age-rotated file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/sproute/config"
)

// New builds a logger for cfg. The returned Closer releases the log file
// and is a no-op when logging to stderr.
func New(cfg config.Logging) (*slog.Logger, io.Closer) {
	if cfg.Logfile == "" {
		return NewWithWriter(cfg, os.Stderr), nopCloser{}
	}
	l := &lumberjack.Logger{
		Filename: cfg.Logfile,
		MaxSize:  cfg.MaxSize, // megabytes
		MaxAge:   cfg.MaxAge,  // days
	}

	return NewWithWriter(cfg, l), l
}

// NewWithWriter builds a logger for cfg that writes to w, ignoring cfg.Logfile.
func NewWithWriter(cfg config.Logging, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a configuration level name to a slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
