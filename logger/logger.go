package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultFilePath is the log file used when Config.FilePath and
	// OUTLOG_FILE are both empty.
	DefaultFilePath = "output.log"
	// DefaultTimeFormat is ISO-8601 local time with milliseconds and offset.
	DefaultTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)

// Config defines the sinks a Logger writes to. Sinks are fixed for the
// lifetime of the Logger.
type Config struct {
	// Console writes colored lines to standard output.
	// Default: false
	Console bool
	// File appends plain lines to FilePath.
	// Default: false
	File bool
	// FilePath is the log file; empty falls back to OUTLOG_FILE, then DefaultFilePath.
	// Default: ""
	FilePath string
	// RequireTerminal makes console acquisition fail when stdout is not a terminal.
	// Default: false
	RequireTerminal bool
	// TimeFormat is the time.Format layout of line timestamps.
	// Default: DefaultTimeFormat
	TimeFormat string
	// Clock supplies line timestamps.
	// Default: time.Now
	Clock func() time.Time
}

func (c Config) filePath() string {
	if c.FilePath != "" {
		return c.FilePath
	}
	if env := os.Getenv("OUTLOG_FILE"); env != "" {
		return env
	}
	return DefaultFilePath
}

// Logger writes leveled lines to a console and/or a log file.
// A Logger is safe for concurrent use; lines never interleave.
// A nil *Logger returns ErrNotInitialized from every method.
type Logger struct {
	mu         sync.Mutex
	console    io.Writer
	terminal   bool
	file       *os.File
	filePath   string
	clock      func() time.Time
	timeFormat string
	closed     bool
}

// New acquires the sinks requested by cfg. Failing to acquire either sink
// returns an *InitializationError and leaves nothing open.
func New(cfg Config) (*Logger, error) {
	l := &Logger{
		clock:      cfg.Clock,
		timeFormat: cfg.TimeFormat,
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.timeFormat == "" {
		l.timeFormat = DefaultTimeFormat
	}

	if cfg.Console {
		c, err := acquireConsole(cfg.RequireTerminal)
		if err != nil {
			return nil, errors.WithStack(&InitializationError{Sink: "console", Err: err})
		}
		l.console = c.w
		l.terminal = c.terminal
	}

	if cfg.File {
		path := cfg.filePath()
		f, err := openFileSink(path)
		if err != nil {
			return nil, errors.WithStack(&InitializationError{Sink: "file", Path: path, Err: err})
		}
		l.file = f
		l.filePath = path
	}
	return l, nil
}

// ConsoleEnabled reports whether lines go to the console.
func (l *Logger) ConsoleEnabled() bool { return l != nil && l.console != nil }

// FileEnabled reports whether lines go to the log file. It is false after Close.
func (l *Logger) FileEnabled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file != nil
}

// FilePath returns the log file path, or "" when file logging is off.
func (l *Logger) FilePath() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filePath
}

// IsTerminal reports whether the console sink is an interactive terminal.
func (l *Logger) IsTerminal() bool { return l != nil && l.terminal }

// Log writes message at level to every enabled sink. The console line is
// wrapped in the level color and a reset sequence; the file line is plain.
func (l *Logger) Log(level Level, message string) error {
	if l == nil {
		return ErrNotInitialized
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}

	ts := l.clock().Format(l.timeFormat)
	var firstErr error
	if l.console != nil {
		line := formatLine(level, ts, message, true)
		if _, err := io.WriteString(l.console, line); err != nil {
			firstErr = errors.Wrap(err, "logger: console write")
		}
	}
	if l.file != nil {
		line := formatLine(level, ts, message, false)
		if _, err := io.WriteString(l.file, line); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "logger: write %s", l.filePath)
		}
	}
	return firstErr
}

// Logf formats template with args (see FormatAny) and logs the result.
func (l *Logger) Logf(level Level, template string, args ...any) error {
	if l == nil {
		return ErrNotInitialized
	}
	msg, err := FormatAny(template, args...)
	if err != nil {
		return err
	}
	return l.Log(level, msg)
}

// formatLine renders "[ts] Label: message" with a trailing newline.
func formatLine(level Level, ts, message string, color bool) string {
	var b strings.Builder
	b.Grow(len(ts) + len(message) + 32)
	if color {
		b.WriteString(level.Color())
	}
	b.WriteByte('[')
	b.WriteString(ts)
	b.WriteString("] ")
	b.WriteString(level.Label())
	b.WriteString(": ")
	b.WriteString(message)
	if color {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')
	return b.String()
}

// ClearOutput clears the console and moves the cursor home.
// It does nothing when the console is disabled.
func (l *Logger) ClearOutput() error {
	if l == nil {
		return ErrNotInitialized
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if l.console == nil {
		return nil
	}
	if _, err := io.WriteString(l.console, clearHome); err != nil {
		return errors.Wrap(err, "logger: console write")
	}
	return nil
}

// Close closes the log file. Later calls on the Logger return ErrClosed.
func (l *Logger) Close() error {
	if l == nil {
		return ErrNotInitialized
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// --- Per-level helpers ---

// Verbose logs message at VerboseLevel.
func (l *Logger) Verbose(message string) error { return l.Log(VerboseLevel, message) }

// Info logs message at LogLevel.
func (l *Logger) Info(message string) error { return l.Log(LogLevel, message) }

// Warning logs message at WarningLevel.
func (l *Logger) Warning(message string) error { return l.Log(WarningLevel, message) }

// Error logs message at ErrorLevel.
func (l *Logger) Error(message string) error { return l.Log(ErrorLevel, message) }

// Critical logs message at CriticalLevel.
func (l *Logger) Critical(message string) error { return l.Log(CriticalLevel, message) }

// Verbosef logs a formatted template at VerboseLevel.
func (l *Logger) Verbosef(template string, args ...any) error {
	return l.Logf(VerboseLevel, template, args...)
}

// Infof logs a formatted template at LogLevel.
func (l *Logger) Infof(template string, args ...any) error {
	return l.Logf(LogLevel, template, args...)
}

// Warningf logs a formatted template at WarningLevel.
func (l *Logger) Warningf(template string, args ...any) error {
	return l.Logf(WarningLevel, template, args...)
}

// Errorf logs a formatted template at ErrorLevel.
func (l *Logger) Errorf(template string, args ...any) error {
	return l.Logf(ErrorLevel, template, args...)
}

// Criticalf logs a formatted template at CriticalLevel.
func (l *Logger) Criticalf(template string, args ...any) error {
	return l.Logf(CriticalLevel, template, args...)
}
