package internal

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger provides a global logger instance for the application.
// It discards everything until one of the Init functions runs.
var Logger = zerolog.Nop()

// InitLogger initializes the global logger with appropriate configuration
// Uses LOG_LEVEL environment variable, defaulting to INFO
func InitLogger() {
	InitLoggerWithLevel(DefaultLogLevel())
}

// DefaultLogLevel returns the LOG_LEVEL environment variable, or "info"
func DefaultLogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

// ParseLogLevel maps a level name to a zerolog level. Unknown names fall
// back to INFO.
func ParseLogLevel(logLevelStr string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(logLevelStr)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// InitLoggerWithLevel initializes the global logger with a specific log level.
// Records go to stderr so they never mix with the game on stdout.
func InitLoggerWithLevel(logLevelStr string) {
	InitLoggerWithWriter(logLevelStr, os.Stderr)
}

// InitLoggerWithWriter initializes the global logger writing console
// formatted records to w.
func InitLoggerWithWriter(logLevelStr string, w io.Writer) {
	level := ParseLogLevel(logLevelStr)

	// Configure console output with colors only if writing to a terminal
	output := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}
	output.TimeFormat = "15:04:05"

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Also set the global log package logger
	log.Logger = Logger

	Logger.Debug().
		Str("level", level.String()).
		Msg("Logger initialized")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// GetLogger returns the configured logger instance
func GetLogger() *zerolog.Logger {
	return &Logger
}

// WithOperation creates a logger with operation context
func WithOperation(operation string) *zerolog.Logger {
	logger := Logger.With().Str("operation", operation).Logger()
	return &logger
}
