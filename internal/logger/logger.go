// Package logger builds the slog logger used by the oop command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	// Debug lowers the level to debug and adds source locations.
	Debug bool

	// Writer receives log records. Defaults to os.Stderr.
	Writer io.Writer
}

// Setup returns a text logger configured from cfg.
func Setup(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	return slog.New(h)
}

// WithRunID tags l with a fresh run_id so the records of one invocation can be grouped.
func WithRunID(l *slog.Logger) *slog.Logger {
	return l.With("run_id", uuid.NewString())
}
