package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

// setupLogging sends logs to stderr so stdout stays clean for values.
func setupLogging() {
	level := parseLevel(viper.GetString("log.level"))

	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})

	logger := slog.New(h)
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
