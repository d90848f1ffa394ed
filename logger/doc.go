// Package logger provides a leveled logger that writes timestamped,
// human-readable lines to a colored console and/or an append-only file,
// with {} message templates.
//
// # Output
//
// Console lines are wrapped in the level color:
//
//	\033[93m[2025-01-02T15:04:05.000+01:00] Warning: disk almost full\033[0m
//
// File lines carry no escape sequences. Each time the file sink is opened a
// line of 72 dashes is appended first, so sessions are easy to tell apart.
//
// # Levels
//
// Verbose, Log, Warning, Error and Critical. Levels select the label and
// color only; every line is written.
//
// # Templates
//
// Placeholders are filled left to right, one argument each:
//
//	logger.Infof("loaded {} items in {} ms", 42, 3.5)
//	logger.Infof("{1} then {0}", "a", "b") // "a then b": digits do not reorder
//	logger.Infof("flags={:x}", uint16(5))  // "flags=0x0005"
//
// Supported arguments are strings, all integer and float types,
// fmt.Stringer and error. Other types fail with *UnsupportedTypeError.
// Typed arguments can be built directly with Text, Int, Float64 and friends
// and passed to Format.
//
// # Usage
//
// Initialize once at startup:
//
//	if err := logger.Init(logger.Config{Console: true, File: true}); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//	defer logger.Close()
//
// or build an instance and pass it around:
//
//	log, err := logger.New(logger.Config{File: true, FilePath: "app.log"})
//
// Logging before Init returns ErrNotInitialized.
//
// The log file defaults to OUTLOG_FILE when set, otherwise output.log.
package logger
