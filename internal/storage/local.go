package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
)

// LocalStorage keeps files in a directory on disk.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates root if needed.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{root: root}, nil
}

// Save writes data under name, replacing an existing file.
func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	path := filepath.Join(s.root, name)
	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow("file saved",
		"path", path,
		"size", len(data),
		"error", err,
	)

	return err
}

// Open returns a reader for the file stored under name.
func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}
