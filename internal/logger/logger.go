// Package logger provides the process-wide zerolog logger.
//
// Output always goes to stderr: stdout carries the connector protocol.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger *zerolog.Logger
)

// Get returns the singleton logger instance, initializing it on first call.
func Get() *zerolog.Logger {
	once.Do(func() {
		logger = newLogger()
	})
	return logger
}

// SetLevel overrides the global level, e.g. from a --log-level flag.
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Get()
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// newLogger creates a logger based on the ENV and LOG_LEVEL environment variables.
func newLogger() *zerolog.Logger {
	env := os.Getenv("ENV")

	logLevel := zerolog.InfoLevel
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if parsedLevel, err := zerolog.ParseLevel(strings.ToLower(levelStr)); err == nil {
			logLevel = parsedLevel
		} else {
			fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL %q; defaulting to 'info'\n", levelStr)
		}
	}

	zerolog.SetGlobalLevel(logLevel)

	if env == "development" || env == "dev" || env == "" {
		return newDevelopment()
	}
	return newProduction()
}

// newDevelopment writes human-readable console lines.
func newDevelopment() *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	zl := zerolog.New(output).With().Timestamp().Logger()
	return &zl
}

// newProduction writes JSON lines with UNIX timestamps.
func newProduction() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &zl
}
