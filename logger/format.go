package logger

import (
	"strings"
)

// Format substitutes args into the {} placeholders of template.
//
// Each argument is applied in its own left-to-right pass: the first
// placeholder of the current text receives the argument and every later
// brace in that pass is copied as is. The result of one pass is the input
// of the next. Digits inside a placeholder ("{0}", "{1}") are accepted but
// do not select the argument; placeholders always take arguments in order.
// A ":x" suffix ("{:x}", "{2:x}") renders the argument in hexadecimal.
//
// Placeholders left over after the last argument stay in the output
// literally. Arguments left over after the last placeholder are ignored.
func Format(template string, args ...Value) (string, error) {
	out := template
	for _, arg := range args {
		var err error
		if out, err = substitute(out, arg); err != nil {
			return "", err
		}
	}
	return out, nil
}

// FormatAny is Format for dynamically typed arguments. Each argument goes
// through ValueOf; the first unsupported one aborts formatting.
func FormatAny(template string, args ...any) (string, error) {
	values := make([]Value, len(args))
	for i, a := range args {
		v, err := ValueOf(a)
		if err != nil {
			return "", err
		}
		values[i] = v
	}
	return Format(template, values...)
}

// placeholder tracks the contents of the placeholder being scanned.
type placeholder struct {
	start int  // index of the opening brace
	index int  // decoded digits, -1 when none
	spec  bool // inside the ":" format suffix
	hex   bool
}

// substitute performs one pass of Format with a single argument.
func substitute(template string, arg Value) (string, error) {
	var b strings.Builder
	b.Grow(len(template) + 16)

	var (
		ph       placeholder
		open     bool
		resolved bool
	)
	for i := 0; i < len(template); i++ {
		c := template[i]
		if resolved {
			b.WriteByte(c)
			continue
		}
		if c == '{' {
			start := i
			if open {
				start = ph.start
			}
			open = true
			ph = placeholder{start: start, index: -1}
			continue
		}
		if !open {
			b.WriteByte(c)
			continue
		}
		switch {
		case c == '}':
			s, err := Stringify(arg, ph.hex)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			open = false
			resolved = true
		case c == ':':
			ph.spec = true
		case ph.spec:
			if c == 'x' {
				ph.hex = true
			}
		case c >= '0' && c <= '9':
			// Decoded but not used to pick the argument.
			if ph.index < 0 {
				ph.index = 0
			}
			ph.index = ph.index*10 + int(c-'0')
		}
	}
	if open {
		b.WriteString(template[ph.start:])
	}
	return b.String(), nil
}
