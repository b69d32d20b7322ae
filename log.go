package menulayout

import (
	"log/slog"
	"os"
)

// layoutLogLevel controls the log level for layout logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var layoutLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the layout engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		layoutLogLevel.Set(slog.LevelDebug)
	} else {
		layoutLogLevel.Set(slog.LevelInfo)
	}
}

// layoutLogger is the default logger for engines created without WithLogger.
var layoutLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: layoutLogLevel}))
