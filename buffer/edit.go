package buffer

import (
	"fmt"
	"slices"
)

// Replace overwrites the content of line index.
func (b *Buffer) Replace(index int, text string) error {
	if !b.validLine(index) {
		return lineOutOfRange("replace", index, len(b.lines))
	}
	if string(b.lines[index]) == text {
		return nil
	}
	b.lines[index] = []byte(text)
	b.touch()
	return nil
}

// InsertLineAfter inserts text as a new line directly after line index.
func (b *Buffer) InsertLineAfter(index int, text string) error {
	if !b.validLine(index) {
		return lineOutOfRange("insert after", index, len(b.lines))
	}
	b.lines = slices.Insert(b.lines, index+1, []byte(text))
	b.touch()
	return nil
}

// SplitLine moves the bytes of line index from column onward into a new line
// directly after it. The split line keeps [0, column).
func (b *Buffer) SplitLine(index, column int) error {
	if !b.validLine(index) {
		return lineOutOfRange("split", index, len(b.lines))
	}
	line := b.lines[index]
	if column < 0 || column > len(line) {
		return columnOutOfRange("split", index, column, len(line))
	}

	tail := slices.Clone(line[column:])
	if tail == nil {
		tail = []byte{}
	}
	b.lines[index] = line[:column:column]
	b.lines = slices.Insert(b.lines, index+1, tail)
	b.touch()
	return nil
}

// JoinWithNext appends line index+1 to line index and removes line index+1.
func (b *Buffer) JoinWithNext(index int) error {
	if !b.validLine(index) || index+1 >= len(b.lines) {
		return lineOutOfRange("join", index, len(b.lines))
	}
	b.lines[index] = append(b.lines[index], b.lines[index+1]...)
	b.lines = slices.Delete(b.lines, index+1, index+2)
	b.touch()
	return nil
}

// RemoveLine deletes line index. The last remaining line cannot be removed;
// clear it with Replace instead.
func (b *Buffer) RemoveLine(index int) error {
	if !b.validLine(index) {
		return lineOutOfRange("remove", index, len(b.lines))
	}
	if len(b.lines) == 1 {
		return fmt.Errorf("%w: cannot remove the only line", ErrInvariantViolation)
	}
	b.lines = slices.Delete(b.lines, index, index+1)
	b.touch()
	return nil
}

// InsertByte inserts c before column in line index.
func (b *Buffer) InsertByte(index, column int, c byte) error {
	if !b.validLine(index) {
		return lineOutOfRange("insert", index, len(b.lines))
	}
	line := b.lines[index]
	if column < 0 || column > len(line) {
		return columnOutOfRange("insert", index, column, len(line))
	}
	b.lines[index] = slices.Insert(line, column, c)
	b.touch()
	return nil
}

// DeleteByte removes the byte at column in line index.
func (b *Buffer) DeleteByte(index, column int) error {
	if !b.validLine(index) {
		return lineOutOfRange("delete", index, len(b.lines))
	}
	line := b.lines[index]
	if column < 0 || column >= len(line) {
		return columnOutOfRange("delete", index, column, len(line))
	}
	b.lines[index] = slices.Delete(line, column, column+1)
	b.touch()
	return nil
}
