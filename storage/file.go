package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultPerm fs.FileMode = 0o644

// FileStore reads and writes documents on the local file system.
type FileStore struct {
	// Perm is the mode for newly created files. Zero means 0644.
	Perm fs.FileMode
}

func (s FileStore) Load(name string) ([]string, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return lines, nil
}

// Save writes lines to a temporary file next to name and renames it into
// place, so a failed write leaves the previous file intact. An existing
// file's mode is preserved.
func (s FileStore) Save(name string, lines []string) error {
	perm := s.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	if st, err := os.Stat(name); err == nil {
		perm = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := WriteLines(tmp, lines); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmpName, name); err != nil {
		cleanup()
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
