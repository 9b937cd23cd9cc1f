// Package logger provides the report sink: a leveled logger that writes
// "<timestamp> - <LEVEL> - <message>" lines, and the per-day log file the
// lines are mirrored into.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const lineTimeLayout = "2006-01-02 15:04:05,000"

// Filename returns the day's log file name. The date digits run
// year/day/month, so March 1st 2025 yields "20250103_system_health.log".
func Filename(t time.Time) string {
	return t.Format("20060201") + "_system_health.log"
}

// Open creates the day's log file in dir, truncating any earlier run's file.
// A rerun on the same calendar date keeps only its own lines.
func Open(dir string, t time.Time) (*os.File, error) {
	return os.Create(filepath.Join(dir, Filename(t)))
}

// ParseLevel maps a config string to a slog level, falling back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// New returns a logger writing one formatted line per record to w. Pass an
// io.MultiWriter to mirror the same lines to console and file.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&lineHandler{w: w, level: level, mu: &sync.Mutex{}})
}

type lineHandler struct {
	w     io.Writer
	level slog.Level
	mu    *sync.Mutex
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s - %s - %s\n", r.Time.Format(lineTimeLayout), r.Level, r.Message)
	return err
}

// The line format has no room for attrs or groups.
func (h *lineHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *lineHandler) WithGroup(_ string) slog.Handler { return h }
