package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the package-level JSON logger. level accepts "debug", "info",
// "warn" or "error"; anything else falls back to info.
func Init(level string) {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	Log = slog.New(handler)
}
