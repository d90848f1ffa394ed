package logger

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that the mutex prevents garbled output
// when multiple goroutines log simultaneously at different levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	buf := captureConsole(t)
	logPath := filepath.Join(t.TempDir(), "concurrent.log")

	l, err := New(Config{Console: true, File: true, FilePath: logPath, Clock: fixedClock})
	if err != nil {
		t.Fatal(err)
	}

	const numGoroutines = 100
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Verbosef("goroutine-{}-verbose-{}", id, j)
				l.Infof("goroutine-{}-info-{}", id, j)
				l.Warningf("goroutine-{}-warn-{}", id, j)
				l.Errorf("goroutine-{}-error-{}", id, j)
			}
		}(i)
	}
	wg.Wait()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	expectedLines := numGoroutines * messagesPerGoroutine * 4

	consoleLine := regexp.MustCompile(`^\x1b\[\d+m\[` + regexp.QuoteMeta(fixedStamp) + `\] (Verbose|Log|Warning|Error): goroutine-\d+-(verbose|info|warn|error)-\d+\x1b\[0m$`)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != expectedLines {
		t.Fatalf("expected %d console lines, got %d", expectedLines, len(lines))
	}
	for i, line := range lines {
		if !consoleLine.MatchString(line) {
			t.Fatalf("garbled console line %d: %q", i, line)
		}
	}

	fileLine := regexp.MustCompile(`^\[` + regexp.QuoteMeta(fixedStamp) + `\] (Verbose|Log|Warning|Error): goroutine-\d+-(verbose|info|warn|error)-\d+$`)
	log := strings.TrimPrefix(readLog(t, logPath), separator)
	fileLines := strings.Split(strings.TrimSuffix(log, "\n"), "\n")
	if len(fileLines) != expectedLines {
		t.Fatalf("expected %d file lines, got %d", expectedLines, len(fileLines))
	}
	seen := make(map[string]bool, len(fileLines))
	for i, line := range fileLines {
		if !fileLine.MatchString(line) {
			t.Fatalf("garbled file line %d: %q", i, line)
		}
		seen[line] = true
	}
	if len(seen) != expectedLines {
		t.Fatalf("expected %d distinct lines, got %d", expectedLines, len(seen))
	}
	sample := fmt.Sprintf("[%s] Warning: goroutine-%d-warn-%d", fixedStamp, numGoroutines-1, messagesPerGoroutine-1)
	if !seen[sample] {
		t.Fatalf("missing line %q", sample)
	}
}

// TestConcurrency_AccessorsDuringClose reads the file state while another
// goroutine closes the logger. Run with -race.
func TestConcurrency_AccessorsDuringClose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "close.log")
	l, err := New(Config{File: true, FilePath: logPath, Clock: fixedClock})
	if err != nil {
		t.Fatal(err)
	}

	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		for k := 0; k < 1000; k++ {
			if l.FileEnabled() && l.FilePath() != logPath {
				t.Errorf("FilePath() = %q while file is enabled", l.FilePath())
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		<-start
		if err := l.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()
	close(start)
	wg.Wait()

	if l.FileEnabled() {
		t.Fatal("FileEnabled() = true after Close")
	}
}
