package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoObject    = errors.New("storage: no object")
	ErrExists      = errors.New("storage: object already exists")
	ErrInvalidName = errors.New("storage: invalid name")
)

// Store holds uploaded attachment files keyed by their generated name.
type Store interface {
	Put(name string, r io.Reader) (int64, error)
	Open(name string) (*os.File, error)
	Delete(name string) error
}

// local is a store rooted at a single directory on the local filesystem.
type local struct {
	path string
}

// NewLocalStore initializes a local file store creating the path if necessary.
func NewLocalStore(path string) (Store, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore: failed to make path '%s' absolute: %w", path, err)
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore: failed to create path '%s': %w", path, err)
	}
	return &local{path: path}, nil
}

// pathFor resolves name inside the root. Names must be a single path element.
func (s *local) pathFor(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.path, name), nil
}

// Put writes r under name. Existing objects are never overwritten.
func (s *local) Put(name string, r io.Reader) (int64, error) {
	fullPath, err := s.pathFor(name)
	if err != nil {
		return 0, err
	}
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, os.ErrExist) {
		return 0, fmt.Errorf("%w: %q", ErrExists, name)
	} else if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(fullPath)
		return 0, err
	}
	if err := f.Sync(); err != nil {
		os.Remove(fullPath)
		return 0, err
	}
	return n, nil
}

func (s *local) Open(name string) (*os.File, error) {
	fullPath, err := s.pathFor(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrNoObject, name)
	}
	return f, err
}

// Delete removes name. A missing object is not an error.
func (s *local) Delete(name string) error {
	fullPath, err := s.pathFor(name)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
