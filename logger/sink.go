package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// separator is written to the log file at the start of every session.
var separator = strings.Repeat("-", 72) + "\n"

// console is an acquired console sink.
type console struct {
	w        io.Writer
	terminal bool
}

// Dependency injection points for testing outputs.
var (
	outStdout *os.File = os.Stdout

	// acquireConsole returns a writer that interprets ANSI escape sequences.
	acquireConsole = acquireStdoutConsole
)

// acquireStdoutConsole wraps stdout so ANSI sequences are honored. On Windows
// go-colorable enables virtual terminal processing on the console handle.
func acquireStdoutConsole(requireTerminal bool) (console, error) {
	if outStdout == nil {
		return console{}, errors.New("no standard output")
	}
	fd := outStdout.Fd()
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if requireTerminal && !terminal {
		return console{}, errors.Errorf("%s is not a terminal", outStdout.Name())
	}
	return console{w: colorable.NewColorable(outStdout), terminal: terminal}, nil
}

// openFileSink opens path for appending and writes the session separator.
func openFileSink(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(f, separator); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write separator")
	}
	return f, nil
}
