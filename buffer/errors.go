package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a line index or column outside the buffer.
	ErrOutOfRange = errors.New("buffer: out of range")

	// ErrInvariantViolation reports an operation that would leave the buffer
	// without lines.
	ErrInvariantViolation = errors.New("buffer: invariant violation")
)

func lineOutOfRange(op string, index, count int) error {
	return fmt.Errorf("%w: %s line %d (have %d lines)", ErrOutOfRange, op, index, count)
}

func columnOutOfRange(op string, index, col, length int) error {
	return fmt.Errorf("%w: %s line %d col %d (line length %d)", ErrOutOfRange, op, index, col, length)
}
