package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists the blob as a single file on disk.  Writes go through
// a temporary file and rename so a crash mid-write never leaves a
// truncated collection behind.
type File struct {
	path string
}

// NewFile returns a file-backed store writing to path.  The parent
// directory is created on first save.
func NewFile(path string) *File { return &File{path: path} }

// Load reads the whole file.  A missing file maps to ErrNotFound.
func (f *File) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// Save writes the blob to a sibling temp file and renames it into
// place.
func (f *File) Save(ctx context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", f.path, err)
	}
	return nil
}
