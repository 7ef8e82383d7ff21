package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob keeps one <key>.json file per key under a data directory.
type FileBlob struct {
	dir string
}

func NewFileBlob(dir string) (*FileBlob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", ErrUnavailable, dir, err)
	}
	return &FileBlob{dir: dir}, nil
}

func (f *FileBlob) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBlob) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	return data, nil
}

func (f *FileBlob) Set(key string, data []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
