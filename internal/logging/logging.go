// Package logging builds the process-wide slog logger on top of charmbracelet/log.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config string to a charmbracelet/log level. Unknown values fall back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter maps a config string to a charmbracelet/log formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New returns a slog.Logger whose handler is a charmbracelet/log logger.
func New(w io.Writer, level, format string) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       ParseFormatter(format),
		ReportTimestamp: true,
		Prefix:          "dayplanner",
	})
	return slog.New(handler)
}

// GormWriter adapts a slog.Logger to the Printf writer expected by gorm's logger.
// Lines keep the severity gorm gave them, so failed statements still reach
// a logger configured at warn or error.
type GormWriter struct {
	Logger *slog.Logger
}

func (w GormWriter) Printf(format string, args ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	w.Logger.Log(context.Background(), gormLineLevel(msg, args), msg, "component", "gorm")
}

// gormLineLevel recovers the level of a line produced by gorm's logger.
// Failed statement traces carry the error among their arguments.
func gormLineLevel(msg string, args []any) slog.Level {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return slog.LevelError
		}
	}
	switch {
	case strings.Contains(msg, "[error]"):
		return slog.LevelError
	case strings.Contains(msg, "SLOW SQL"), strings.Contains(msg, "[warn]"):
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
