// Package slogx holds the slog wiring shared by the CLI entrypoints.
package slogx

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts a level string (debug|info|warn|error) to a
// slog.Level. Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a stderr logger with the given level and format
// ("json" or text).
func New(level, format string) *slog.Logger {
	return newWith(os.Stderr, level, format)
}

func newWith(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ChanWriter buffers writes and sends complete lines to a channel; full
// channels drop lines instead of blocking the logger.
type ChanWriter struct {
	Ch  chan<- string
	buf []byte
}

func (w *ChanWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		line := string(w.buf[:i])
		w.buf = w.buf[i+1:]
		select {
		case w.Ch <- line:
		default:
		}
	}
	return len(p), nil
}

// NewChanLogger creates a text logger whose lines fan in to ch. Used by
// the watch loop to capture a run's log output into its run report.
func NewChanLogger(ch chan<- string, level string) *slog.Logger {
	return newWith(&ChanWriter{Ch: ch}, level, "text")
}
