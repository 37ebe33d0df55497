// Package storage loads and saves documents as newline-delimited records.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ErrNotFound reports a document that does not exist in the store.
var ErrNotFound = fmt.Errorf("storage: not found: %w", fs.ErrNotExist)

// Store is the byte-stream capability behind load and save.
type Store interface {
	Load(name string) ([]string, error)
	Save(name string, lines []string) error
}

// ReadLines splits r into '\n'-delimited records.
//
// A trailing newline does not produce an extra empty record. Bytes are kept
// as-is, including '\r'.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			lines = append(lines, strings.TrimSuffix(s, "\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteLines writes every line followed by '\n'.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
