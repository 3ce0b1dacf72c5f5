// Package logger provides structured logging for preflight.
// Uses log/slog writing to stderr and, optionally, an append-only log file.
// Nothing is ever logged to stdout, which carries the report.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/f9-o/preflight/pkg/errs"
)

// Options configures Init.
type Options struct {
	Level  string    // debug | info | warn | error
	Format string    // text | json
	File   string    // optional log file, appended to
	Debug  bool      // forces debug level and source locations
	Stderr io.Writer // defaults to os.Stderr
}

// Logger wraps slog.Logger and owns the optional log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Init builds a Logger from opts and installs it as the slog default.
func Init(opts Options) (*Logger, error) {
	lvl := ParseLevel(opts.Level)
	if opts.Debug {
		lvl = slog.LevelDebug
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	writers := []io.Writer{stderr}

	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0750); err != nil {
			return nil, errs.New(errs.ErrConfig, "logger.init", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return nil, errs.New(errs.ErrConfig, "logger.init", err).
				WithAdvice("check log.file in your preflight config")
		}
		file = f
		writers = append(writers, f)
	}

	out := io.MultiWriter(writers...)

	var handler slog.Handler
	hopts := &slog.HandlerOptions{Level: lvl, AddSource: opts.Debug}
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(out, hopts)
	} else {
		handler = slog.NewTextHandler(out, hopts)
	}

	base := slog.New(handler)
	slog.SetDefault(base)

	return &Logger{Logger: base, file: file}, nil
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
