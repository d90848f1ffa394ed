package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is a log severity. Levels only select the label and color of a
// line; nothing is filtered by level.
type Level int

const (
	// VerboseLevel is for detailed tracing output.
	VerboseLevel Level = iota
	// LogLevel is for regular messages.
	LogLevel
	// WarningLevel is for recoverable problems.
	WarningLevel
	// ErrorLevel is for failed operations.
	ErrorLevel
	// CriticalLevel is for failures that need immediate attention.
	// Unknown levels are treated as CriticalLevel.
	CriticalLevel
)

const (
	colorReset = "\033[0m"
	clearHome  = "\033[2J\033[H"
)

// AllLevels returns all supported levels in increasing urgency.
func AllLevels() []Level {
	return []Level{
		VerboseLevel,
		LogLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
	}
}

// Label returns the display name of the level.
func (l Level) Label() string {
	switch l {
	case VerboseLevel:
		return "Verbose"
	case LogLevel:
		return "Log"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	default:
		return "Critical"
	}
}

// Color returns the ANSI escape sequence used for console lines of the level.
func (l Level) Color() string {
	switch l {
	case VerboseLevel:
		return "\033[37m"
	case LogLevel:
		return "\033[97m"
	case WarningLevel:
		return "\033[93m"
	case ErrorLevel:
		return "\033[91m"
	default:
		return "\033[101m\033[97m"
	}
}

func (l Level) String() string { return l.Label() }

// ParseLevel parses a level label, case-insensitively.
// Single-letter aliases V, L, W, E and C are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "V":
		return VerboseLevel, nil
	case "LOG", "L":
		return LogLevel, nil
	case "WARNING", "WARN", "W":
		return WarningLevel, nil
	case "ERROR", "E":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT", "C":
		return CriticalLevel, nil
	}
	return CriticalLevel, errors.Errorf("logger: unknown level %q", s)
}
