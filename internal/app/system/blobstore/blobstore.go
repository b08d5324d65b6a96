// Package blobstore manages the on-disk area for uploaded PDF binaries.
//
// Stored names combine the upload time, a short random component, and the
// sanitized original filename, so two concurrent uploads never collide and
// paths never depend on prior state. All paths handed out are relative to
// the store root; the root itself is created on first use.
package blobstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned when a stored path would escape the root.
var ErrInvalidPath = errors.New("invalid blob path")

// Store is a local-disk blob area rooted at a single directory.
type Store struct {
	root string
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first Save.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// Save writes r to a fresh file and returns the stored path (relative to the
// root) and the number of bytes written. A partial file left by a failed
// copy is removed before the error is returned, so Save never leaves
// half-written blobs behind.
func (s *Store) Save(name string, r io.Reader) (string, int64, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", 0, fmt.Errorf("create blob root: %w", err)
	}

	stored := fmt.Sprintf("%d-%s-%s",
		time.Now().UTC().UnixNano(),
		uuid.New().String()[:8],
		sanitizeFilename(name))

	full := filepath.Join(s.root, stored)
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create blob file: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(full)
		return "", 0, fmt.Errorf("write blob file: %w", err)
	}

	return stored, size, nil
}

// Open opens the blob at the given stored path for reading.
func (s *Store) Open(path string) (*os.File, error) {
	full, err := s.FullPath(path)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes the blob at the given stored path.
func (s *Store) Remove(path string) error {
	full, err := s.FullPath(path)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// FullPath resolves a stored path to an absolute location under the root.
// Stored paths are single flat names; anything with separators or traversal
// components is rejected.
func (s *Store) FullPath(path string) (string, error) {
	if path == "" || path != filepath.Base(path) || strings.HasPrefix(path, ".") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, path), nil
}

// sanitizeFilename removes or replaces characters that could be problematic
// in filenames, keeping just the base name.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
