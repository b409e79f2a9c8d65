package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init configures the global slog logger on stderr.
// format "json" selects the JSON handler for log aggregation; anything else
// uses the human-readable text handler.
func Init(format, level string) error {
	h, err := NewHandler(os.Stderr, format, level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// NewHandler builds the handler Init installs, writing to w.
func NewHandler(w io.Writer, format, level string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts), nil
	}
	return slog.NewTextHandler(w, opts), nil
}

// ParseLevel maps debug, info, warn and error to slog levels. "" is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// WithProvider returns a logger scoped to one provider call.
func WithProvider(provider, model string) *slog.Logger {
	return slog.With("provider", provider, "model", model)
}
