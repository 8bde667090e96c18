package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Store interface {
	Save(name string, data []byte) (string, error)
}

type Mirror interface {
	Upload(ctx context.Context, key string, data []byte) (publicURL string, err error)
}

// LocalStore — каталог с аудиофайлами. Файлы write-once, никто их
// не чистит и не индексирует.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}
