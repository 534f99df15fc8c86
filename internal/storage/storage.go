package storage

import (
	"context"
	"errors"
	"io/fs"
	"time"
)

// Package storage contains the platform primitives the filesystem adapter is built on.
// Implementations report raw errors; deciding what is a failure is the caller's job.

// ErrNotFound is returned when nothing exists at a path. It matches fs.ErrNotExist
// through errors.Is so callers can use either sentinel.
var ErrNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string        { return "not found" }
func (notFoundError) Is(target error) bool { return target == fs.ErrNotExist }

// IsNotFound reports whether err means the path does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// EntryInfo describes a file or directory.
type EntryInfo struct {
	Name    string
	Size    int64
	IsDir   bool
	ModTime time.Time
}

// Backend is the host filesystem seen as an opaque collaborator.
// Paths are absolute, slash- or OS-separated as produced by path/filepath.
type Backend interface {
	// Stat describes the entry at path or returns ErrNotFound.
	Stat(ctx context.Context, path string) (EntryInfo, error)
	// ReadDir lists the names directly inside the directory at path.
	ReadDir(ctx context.Context, path string) ([]string, error)
	// ReadFile loads the whole file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile creates or truncates the file at path with data.
	WriteFile(ctx context.Context, path string, data []byte) error
	// RemoveAll removes path and any children. A missing path is not an error.
	RemoveAll(ctx context.Context, path string) error
}
