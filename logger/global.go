package logger

import "sync"

// global state
var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Init builds the process-wide logger. It may succeed only once: later
// calls return ErrAlreadyInitialized and keep the first logger. A failed
// Init leaves the package uninitialized.
func Init(cfg Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger != nil {
		return ErrAlreadyInitialized
	}
	l, err := New(cfg)
	if err != nil {
		return err
	}
	defaultLogger = l
	return nil
}

// Default returns the logger installed by Init.
func Default() (*Logger, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return nil, ErrNotInitialized
	}
	return defaultLogger, nil
}

// current returns the default logger, or nil before Init.
// Methods on a nil *Logger report ErrNotInitialized.
func current() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLogger
}

// Log writes message at level through the default logger.
func Log(level Level, message string) error { return current().Log(level, message) }

// Logf formats template with args and logs it through the default logger.
func Logf(level Level, template string, args ...any) error {
	return current().Logf(level, template, args...)
}

// Per-level helpers on the default logger.

func Verbose(message string) error { return current().Verbose(message) }
func Info(message string) error { return current().Info(message) }
func Warning(message string) error { return current().Warning(message) }
func Error(message string) error { return current().Error(message) }
func Critical(message string) error { return current().Critical(message) }

func Verbosef(template string, args ...any) error { return current().Verbosef(template, args...) }
func Infof(template string, args ...any) error { return current().Infof(template, args...) }
func Warningf(template string, args ...any) error { return current().Warningf(template, args...) }
func Errorf(template string, args ...any) error { return current().Errorf(template, args...) }
func Criticalf(template string, args ...any) error { return current().Criticalf(template, args...) }

// ClearOutput clears the console of the default logger.
func ClearOutput() error { return current().ClearOutput() }

// Close closes the default logger. The package stays initialized; further
// logging returns ErrClosed.
func Close() error { return current().Close() }

