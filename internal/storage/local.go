package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// localStorage implements Backend on the host operating system.
// It is safe for concurrent use; every call opens and releases its own handles.
type localStorage struct {
	fileMode fs.FileMode
}

// NewLocal returns a Backend on the local disk. Written files get fileMode;
// a zero mode falls back to 0644.
func NewLocal(fileMode fs.FileMode) Backend {
	if fileMode == 0 {
		fileMode = 0o644
	}
	return &localStorage{fileMode: fileMode}
}

func (l *localStorage) Stat(_ context.Context, path string) (EntryInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EntryInfo{}, fmt.Errorf("stat %s: %w", path, ErrNotFound)
		}
		return EntryInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return EntryInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}, nil
}

func (l *localStorage) ReadDir(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (l *localStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (l *localStorage) WriteFile(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, l.fileMode)
}

func (l *localStorage) RemoveAll(_ context.Context, path string) error {
	return os.RemoveAll(path)
}
