package buffer

import "strings"

// Buffer is the in-memory document: an ordered sequence of lines.
//
// The zero value is not usable; construct with New or FromLines.
type Buffer struct {
	lines   [][]byte
	version uint64
}

// New returns a buffer holding a single empty line.
func New() *Buffer {
	return &Buffer{lines: [][]byte{{}}}
}

// FromLines returns a buffer holding a copy of lines. An empty slice yields a
// single empty line.
func FromLines(lines []string) *Buffer {
	b := &Buffer{lines: make([][]byte, 0, max(len(lines), 1))}
	for _, s := range lines {
		b.lines = append(b.lines, []byte(s))
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, []byte{})
	}
	return b
}

// Version increments on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the content of line index.
func (b *Buffer) Line(index int) (string, error) {
	if !b.validLine(index) {
		return "", lineOutOfRange("read", index, len(b.lines))
	}
	return string(b.lines[index]), nil
}

// LineLen returns the byte length of line index, or 0 when index is invalid.
func (b *Buffer) LineLen(index int) int {
	if !b.validLine(index) {
		return 0
	}
	return len(b.lines[index])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Text returns the lines joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}

func (b *Buffer) validLine(index int) bool {
	return index >= 0 && index < len(b.lines)
}

func (b *Buffer) touch() { b.version++ }
