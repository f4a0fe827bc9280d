package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalFileStore keeps uploaded attachments on the local filesystem.
// Stored names are prefixed with a random UUID so uploads never collide
// and the original filename never reaches the disk path unsanitized.
type LocalFileStore struct {
	baseDir string
}

func NewLocalFileStore(baseDir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{baseDir: baseDir}, nil
}

func (s *LocalFileStore) Store(originalName string, content io.Reader) (string, int64, error) {
	storedName := uuid.NewString() + "-" + sanitizeFilename(originalName)

	f, err := os.Create(filepath.Join(s.baseDir, storedName))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.baseDir, storedName))
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, size, nil
}

func (s *LocalFileStore) Open(storedName string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.baseDir, filepath.Base(storedName)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalFileStore) Remove(storedName string) error {
	path := filepath.Join(s.baseDir, filepath.Base(storedName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// sanitizeFilename strips any path components and characters that are
// unsafe in a filename, keeping the extension intact.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}
