// Package storage keeps attachment files on the local filesystem
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// attachmentsDir is the top-level folder of stored attachments, split by upload date
const attachmentsDir = "email_attachments"

// ErrInvalidPath is returned for stored paths that escape the storage root
var ErrInvalidPath = errors.New("invalid storage path")

// LocalStorage stores files below basePath
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a new LocalStorage instance
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		now:      time.Now,
	}
}

// Save writes r to a new file named after originalName's extension and returns
// the stored path (relative to the storage root) and the number of bytes written
func (s *LocalStorage) Save(originalName string, r io.Reader) (string, int64, error) {
	rel := filepath.ToSlash(filepath.Join(
		attachmentsDir,
		s.now().Format("2006/01/02"),
		GenerateFileName(filepath.Ext(originalName)),
	))

	full, err := s.fullPath(rel)
	if err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	sw := NewSizeWriter()
	if _, err := io.Copy(f, io.TeeReader(r, sw)); err != nil {
		f.Close()
		os.Remove(full)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return "", 0, fmt.Errorf("failed to close file: %w", err)
	}

	return rel, sw.Size(), nil
}

// Open opens a stored file for reading
func (s *LocalStorage) Open(path string) (io.ReadCloser, error) {
	full, err := s.fullPath(path)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Delete removes a stored file. Deleting a missing file is not an error.
func (s *LocalStorage) Delete(path string) error {
	full, err := s.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Check verifies the storage root exists and is writable
func (s *LocalStorage) Check() error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("attachment storage unavailable: %w", err)
	}
	f, err := os.CreateTemp(s.basePath, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("attachment storage not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// fullPath resolves a stored path against the storage root
func (s *LocalStorage) fullPath(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if path == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return filepath.Join(s.basePath, clean), nil
}
