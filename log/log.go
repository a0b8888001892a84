package log

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Level represents a log severity by name.
type Level string

const (
	// LevelError logs errors only.
	LevelError Level = "error"
	// LevelWarn logs warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug logs everything.
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"
	// FormatLogfmt outputs key=value pairs.
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("unknown log format")
)

// NewHandler creates a [slog.Handler] writing to w with the given level and
// format. Text and logfmt both map to slog's text handler; the JSON handler
// additionally records source locations.
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level.Slog(),
	}

	switch format {
	case FormatJSON:
		opts.AddSource = true

		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// NewHandlerFromStrings creates a [slog.Handler] from level and format
// strings, as they arrive from CLI flags.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	fmtv, err := GetFormat(format)
	if err != nil {
		return nil, err
	}

	return NewHandler(w, lvl, fmtv), nil
}

// Slog maps the level to its [slog.Level].
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// GetLevel parses a level string, case-insensitively. "warning" is accepted
// as an alias for "warn".
func GetLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLevel
}

// GetFormat parses a format string, case-insensitively.
func GetFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "text":
		return FormatText, nil
	case "logfmt":
		return FormatLogfmt, nil
	case "json":
		return FormatJSON, nil
	}

	return "", ErrUnknownFormat
}

// GetAllLevelStrings returns the accepted level names.
func GetAllLevelStrings() []string {
	return []string{"error", "warn", "info", "debug"}
}

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	return []string{"text", "logfmt", "json"}
}
