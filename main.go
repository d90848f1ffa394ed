package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mordilloSan/go-outlog/logger"
)

// Example demonstrating go-outlog usage.
func main() {
	// Usage: ./go-outlog [-console=false] [-file] [-path app.log] [-clear]
	useConsole := flag.Bool("console", true, "write colored lines to the console")
	logToFile := flag.Bool("file", false, "append plain lines to the log file")
	path := flag.String("path", "", "log file path (default $OUTLOG_FILE or output.log)")
	clearScreen := flag.Bool("clear", false, "clear the console before logging")
	flag.Parse()

	if err := logger.Init(logger.Config{
		Console:  *useConsole,
		File:     *logToFile,
		FilePath: *path,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if *clearScreen {
		logger.ClearOutput()
	}

	// One line per level
	logger.Verbose("verbose details")
	logger.Info("regular message")
	logger.Warning("something looks off")
	logger.Error("operation failed")
	logger.Critical("system failure")

	// Templates: placeholders take arguments in order, digits are decorative
	logger.Infof("{} items loaded in {} ms", 42, 3.5)
	logger.Infof("{1} comes after {0}", "first", "second")
	logger.Warningf("status register {:x}", uint16(0x00f3))

	// Unsupported arguments are reported, not coerced
	if err := logger.Errorf("bad arg {}", []string{"x"}); err != nil {
		fmt.Fprintf(os.Stderr, "format error: %v\n", err)
	}
}
