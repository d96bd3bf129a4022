package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences and trailing spaces from every line.
func StripANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Line returns line n of the stripped view, or "" when out of range.
func Line(view string, n int) string {
	lines := strings.Split(StripANSI(view), "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}
