// internal/util/logger.go
package util

import (
	"log/slog"
	"os"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger with a JSON handler.
// Unknown level names fall back to info.
func InitLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger("info")
	}
	return logger
}

// Err returns an slog attribute carrying the error text under the "error" key.
//
//	log.Error("failed to add friend", util.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
