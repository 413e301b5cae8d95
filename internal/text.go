package internal

import (
	"strings"
)

// StripComment removes a `//` comment from line, ignoring any `//` that
// appears inside a single or double quoted span, and trims the result.
func StripComment(line string) string {
	var quote rune
	prev := rune(0)
	for n, ch := range line {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '/' && prev == '/':
			return strings.TrimSpace(line[:n-1])
		}
		prev = ch
	}

	return strings.TrimSpace(line)
}

// SplitOperands splits a comma separated operand list, leaving commas
// inside quoted spans untouched. Each operand is trimmed.
func SplitOperands(args string) (ops []string) {
	var quote rune
	start := 0
	for n, ch := range args {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ',':
			ops = append(ops, strings.TrimSpace(args[start:n]))
			start = n + 1
		}
	}
	ops = append(ops, strings.TrimSpace(args[start:]))

	return
}
