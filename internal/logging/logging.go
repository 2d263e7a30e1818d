package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

// InitLogger initializes the global logger based on the log level string.
func InitLogger(level string) {
	var logLevel zerolog.Level

	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().Timestamp().Logger()

	// Route the package-level zerolog logger through the same output so
	// log.Info() style calls stay consistent.
	log.Logger = logger
}

// GetLogger returns the initialized logger. Components derive their own
// sub-loggers from it via With().
func GetLogger() zerolog.Logger {
	return logger
}
