package logger

import "testing"

func TestLevelPolicy(t *testing.T) {
	cases := []struct {
		level Level
		label string
		color string
	}{
		{VerboseLevel, "Verbose", "\033[37m"},
		{LogLevel, "Log", "\033[97m"},
		{WarningLevel, "Warning", "\033[93m"},
		{ErrorLevel, "Error", "\033[91m"},
		{CriticalLevel, "Critical", "\033[101m\033[97m"},
		{Level(42), "Critical", "\033[101m\033[97m"},
		{Level(-1), "Critical", "\033[101m\033[97m"},
	}
	for _, tc := range cases {
		if got := tc.level.Label(); got != tc.label {
			t.Errorf("Level(%d).Label() = %q, want %q", int(tc.level), got, tc.label)
		}
		if got := tc.level.Color(); got != tc.color {
			t.Errorf("Level(%d).Color() = %q, want %q", int(tc.level), got, tc.color)
		}
	}
}

func TestAllLevelsOrdered(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("levels not in increasing urgency: %v", levels)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"verbose":   VerboseLevel,
		"V":         VerboseLevel,
		"Log":       LogLevel,
		" warning ": WarningLevel,
		"WARN":      WarningLevel,
		"error":     ErrorLevel,
		"CRITICAL":  CriticalLevel,
		"c":         CriticalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
