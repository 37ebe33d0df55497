package storage

import (
	"bytes"
	"fmt"
)

// MemStore keeps documents in memory, encoded exactly as FileStore would
// write them. It is not safe for concurrent use.
type MemStore struct {
	docs map[string][]byte

	// FailSave, when set, is returned by Save without storing anything.
	FailSave error
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

func (s *MemStore) Load(name string) ([]string, error) {
	data, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	}
	return ReadLines(bytes.NewReader(data))
}

func (s *MemStore) Save(name string, lines []string) error {
	if s.FailSave != nil {
		return fmt.Errorf("save %s: %w", name, s.FailSave)
	}
	var buf bytes.Buffer
	if err := WriteLines(&buf, lines); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	s.Put(name, buf.Bytes())
	return nil
}

// Raw returns the stored bytes for name.
func (s *MemStore) Raw(name string) ([]byte, bool) {
	data, ok := s.docs[name]
	return data, ok
}

// Put stores a copy of data under name.
func (s *MemStore) Put(name string, data []byte) {
	if s.docs == nil {
		s.docs = make(map[string][]byte)
	}
	s.docs[name] = append([]byte(nil), data...)
}
