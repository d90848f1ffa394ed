package logger

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotInitialized is returned by every logging call made before Init,
	// or through a nil *Logger.
	ErrNotInitialized = errors.New("logger: not initialized")
	// ErrAlreadyInitialized is returned by a second call to Init.
	ErrAlreadyInitialized = errors.New("logger: already initialized")
	// ErrClosed is returned by logging calls made after Close.
	ErrClosed = errors.New("logger: closed")
)

// InitializationError reports that a sink could not be acquired.
// It is fatal to logger construction.
type InitializationError struct {
	// Sink is "console" or "file".
	Sink string
	// Path is the log file path for file sinks.
	Path string
	Err  error
}

func (e *InitializationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("logger: cannot initialize %s sink %s: %v", e.Sink, e.Path, e.Err)
	}
	return fmt.Sprintf("logger: cannot initialize %s sink: %v", e.Sink, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *InitializationError) Cause() error { return e.Err }

// UnsupportedTypeError reports a value that has no string conversion rule.
type UnsupportedTypeError struct {
	// Value holds the rejected dynamic value, if any.
	Value any
	// Kind holds the rejected tag when a Value itself was malformed.
	Kind Kind
}

func (e *UnsupportedTypeError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("logger: unsupported value type %T", e.Value)
	}
	return fmt.Sprintf("logger: unsupported value kind %s", e.Kind)
}
