// Package annotation builds the comment blocks placed in front of generated statements.
package annotation

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// LongLength is the column limit applied to every annotation line.
const LongLength = 250

const (
	blockOpen  = "/**"
	linePrefix = " * "
	blockClose = " */"
)

// Block is an ordered list of comment lines.
type Block struct {
	lines []string
}

func New(lines ...string) Block {
	return Block{lines: append([]string(nil), lines...)}
}

func (b Block) IsEmpty() bool {
	return len(b.lines) == 0
}

// Lines returns the comment lines without any comment markers, wrapped so that
// a prefixed line stays within LongLength.
func (b Block) Lines() []string {
	var wrapped []string
	for _, line := range b.lines {
		wrapped = append(wrapped, strings.Split(wordwrap.WrapString(line, uint(LongLength-len(linePrefix))), "\n")...)
	}
	return wrapped
}

// Render returns the block as a doc comment. An empty block renders nothing.
func (b Block) Render() []string {
	if b.IsEmpty() {
		return nil
	}

	rendered := []string{blockOpen}
	for _, line := range b.Lines() {
		rendered = append(rendered, strings.TrimRight(linePrefix+line, " "))
	}
	return append(rendered, blockClose)
}
