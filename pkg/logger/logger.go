package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns JSON logger writing to w. The level is taken from LOG_LEVEL,
// then from level, and defaults to info.
func New(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelInfo
	for _, candidate := range []string{os.Getenv("LOG_LEVEL"), level} {
		if candidate == "" {
			continue
		}
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(candidate)); err == nil {
			lvl = parsed
			break
		}
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}
