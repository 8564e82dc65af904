package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File stores a journal as a plain UTF-8 text file.
type File struct {
	Path string
}

// NewFile returns file storage for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Locator() string {
	return f.Path
}

func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Create makes an empty journal file, along with its directory.
func (f *File) Create() error {
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: ensure journal directory: %w", err)
		}
	}
	fh, err := os.OpenFile(f.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: create journal: %w", err)
	}
	return fh.Close()
}

func (f *File) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("store: read journal: %w", err)
	}
	return string(data), nil
}

// Store replaces the file contents through a rename.
func (f *File) Store(_ context.Context, text string) error {
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return fmt.Errorf("store: write journal: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("store: replace journal: %w", err)
	}
	return nil
}
