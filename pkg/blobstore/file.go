package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists each key as one file on disk under a base directory. It is
// the durable single-profile backend mirroring a browser's local storage.
type File struct {
	baseDir string
}

// NewFile ensures the base directory exists and returns a handle.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

// Get reads the blob file for key.
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(f.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read blob %s: %w", key, err)
	}
	return raw, true, nil
}

// Set writes the blob file for key.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := os.WriteFile(f.resolve(key), value, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	return nil
}

// Delete removes the blob file if present.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := os.Remove(f.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}

// Path exposes the underlying absolute path (useful for debugging).
func (f *File) Path(key string) string {
	return f.resolve(key)
}

func (f *File) resolve(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}
