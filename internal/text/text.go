// Package text accumulates generated source lines.
package text

import "strings"

// IndentUnit is prepended once per indentation level.
const IndentUnit = "    "

// Buffer is an ordered, append-only sequence of lines. Appending never modifies
// the receiver, so a Buffer can be shared between phases.
type Buffer struct {
	lines []string
}

func (b Buffer) Append(lines ...string) Buffer {
	combined := make([]string, 0, len(b.lines)+len(lines))
	combined = append(combined, b.lines...)
	combined = append(combined, lines...)
	return Buffer{lines: combined}
}

func (b Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b Buffer) Len() int {
	return len(b.lines)
}

// String joins all lines, terminating the last one with a newline.
func (b Buffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// Indent returns given string shifted by depth indentation levels. Empty lines
// stay empty.
func Indent(s string, depth int) string {
	if depth <= 0 || s == "" {
		return s
	}
	return strings.Repeat(IndentUnit, depth) + s
}
