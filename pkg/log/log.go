package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	PrettyFormat = "pretty"
)

// NewWithCurrentConfig creates a [slog.Logger] by using current configuration.
func NewWithCurrentConfig() *slog.Logger {
	h := CreateHandler(os.Stderr, os.Getenv("PATHLIB_LOG_LEVEL"), os.Getenv("PATHLIB_LOG_FORMAT"))

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] by strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) slog.Handler {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case PrettyFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{Level: charmlog.Level(level)})
	case TextFormat:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
}

// CreateHandlerWithStrings creates a [slog.Handler] by strings, returning an
// error for unknown formats instead of falling back to text.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	switch strings.ToLower(logFormat) {
	case JSONFormat, TextFormat, PrettyFormat, "":
		return CreateHandler(w, logLevel, logFormat), nil
	}

	return nil, fmt.Errorf("unknown log format '%s'", logFormat)
}

func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic":
		return slog.LevelError
	case "fatal":
		return slog.LevelError
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// SetLogFormat sets a log/slog format.
func SetLogFormat(logFormat string) {
	switch strings.ToLower(logFormat) {
	case JSONFormat:
		os.Setenv("PATHLIB_LOG_FORMAT", JSONFormat)
	case PrettyFormat:
		os.Setenv("PATHLIB_LOG_FORMAT", PrettyFormat)
	case TextFormat, "":
		os.Setenv("PATHLIB_LOG_FORMAT", TextFormat)
	default:
		panic(fmt.Errorf("unknown log format '%s'", logFormat))
	}

	slog.SetDefault(NewWithCurrentConfig())
}

// SetLogLevel parses and sets a log/slog level.
func SetLogLevel(logLevel string) {
	level := GetLevel(logLevel)
	os.Setenv("PATHLIB_LOG_LEVEL", level.String())
	slog.SetLogLoggerLevel(level)
}
