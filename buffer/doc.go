// Package buffer implements the line store behind the editor.
//
// A Buffer is an ordered, never-empty sequence of byte lines. Lines carry no
// trailing newline. Indexes are 0-based line numbers and columns are byte
// offsets into a line.
package buffer
