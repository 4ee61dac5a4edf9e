package emulator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Save represents a save state file on disk. The contents are held in
// memory and only written back on Close.
type Save struct {
	b     []byte // the save state data
	dirty bool   // b has changed since it was read
	Path  string // the path to the save file
}

// NewSave opens the save file at path. A missing file is not an error,
// it results in an empty Save that is created on Close.
func NewSave(path string) (*Save, error) {
	s := &Save{Path: path}

	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	s.b = b

	return s, nil
}

// Bytes returns the save file data, which is empty when nothing has been
// saved yet.
func (s *Save) Bytes() []byte {
	return s.b
}

// SetBytes sets the save file data.
func (s *Save) SetBytes(b []byte) {
	s.b = append([]byte(nil), b...)
	s.dirty = true
}

// Close writes the data to a temporary file next to Path, and renames it
// over the save file once the write has completed.
func (s *Save) Close() error {
	if !s.dirty {
		return nil
	}

	f, err := os.CreateTemp(filepath.Dir(s.Path), filepath.Base(s.Path)+".*")
	if err != nil {
		return err
	}
	if _, err := f.Write(s.b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}

	s.dirty = false
	return os.Rename(f.Name(), s.Path)
}
