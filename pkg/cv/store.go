package cv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore keeps uploaded files in a directory. URIs are plain file names
// relative to that directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare storage: %w", err)
	}
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return name, nil
}

func (s *FileStore) Open(uri string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(uri)))
}

func (s *FileStore) Remove(uri string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(uri)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
