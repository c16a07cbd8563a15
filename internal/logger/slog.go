package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a slog logger that renders through charmbracelet/log.
func New(w io.Writer, level string) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "webshare",
		ReportTimestamp: true,
		Level:           ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel maps a config level name to a log level. Unknown names fall
// back to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
