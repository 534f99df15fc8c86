package filesystem

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"

	"docfs/internal/logging"
	"docfs/internal/model"
	"docfs/internal/storage"
)

const (
	MsgInvalidDirectory = "Invalid directory provided"
	MsgInvalidName      = "Invalid document name provided"
	MsgWriteFailed      = "Failed to write document"
)

// FileSystem exposes file operations that never fail with a Go error.
// Bad input and missing paths turn into empty or null results; Write reports
// failures through WriteFileResult.
type FileSystem interface {
	// Write stores document under directory, replacing any existing file with the same name.
	Write(ctx context.Context, directory string, document model.Document) model.WriteFileResult

	// List returns the sorted names directly inside the directory at path.
	// It is empty when path is blank, missing or not a directory.
	List(ctx context.Context, path string) []string

	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) bool

	// Delete removes the file or directory tree at path. Missing paths are ignored.
	Delete(ctx context.Context, path string)

	// GetDocument loads the file at path, or returns model.NullDocument.
	GetDocument(ctx context.Context, path string) model.Document
}

// fileSystem is the default FileSystem on top of a storage.Backend.
// It holds no mutable state and is safe for concurrent use.
type fileSystem struct {
	backend storage.Backend
	log     *slog.Logger
}

// NewFileSystem constructs a FileSystem over backend. A nil logger discards output.
func NewFileSystem(backend storage.Backend, log *slog.Logger) FileSystem {
	if log == nil {
		log = logging.Discard()
	}
	return &fileSystem{backend: backend, log: log}
}

func (f *fileSystem) Write(ctx context.Context, directory string, document model.Document) model.WriteFileResult {
	if !IsValidDirectory(directory) {
		f.log.DebugContext(ctx, "write_rejected", "reason", "invalid_directory", "directory", directory)
		return model.NewWriteFileResult(MsgInvalidDirectory)
	}
	if !isValidName(document.Name()) {
		f.log.DebugContext(ctx, "write_rejected", "reason", "invalid_name", "name", document.Name())
		return model.NewWriteFileResult(MsgInvalidName)
	}

	target := filepath.Join(directory, document.Name())
	if err := f.backend.WriteFile(ctx, target, document.Bytes()); err != nil {
		f.log.WarnContext(ctx, "write_failed", "path", target, "error", err.Error())
		return model.NewWriteFileResult(MsgWriteFailed + ": " + err.Error())
	}
	return model.NewWriteFileResult()
}

func (f *fileSystem) List(ctx context.Context, path string) []string {
	if isBlank(path) {
		return []string{}
	}
	info, err := f.backend.Stat(ctx, path)
	if err != nil {
		f.logFault(ctx, "list_stat_failed", path, err)
		return []string{}
	}
	if !info.IsDir {
		return []string{}
	}
	names, err := f.backend.ReadDir(ctx, path)
	if err != nil {
		f.logFault(ctx, "list_failed", path, err)
		return []string{}
	}
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

func (f *fileSystem) Exists(ctx context.Context, path string) bool {
	if isBlank(path) {
		return false
	}
	if _, err := f.backend.Stat(ctx, path); err != nil {
		f.logFault(ctx, "exists_stat_failed", path, err)
		return false
	}
	return true
}

func (f *fileSystem) Delete(ctx context.Context, path string) {
	if isBlank(path) {
		return
	}
	if err := f.backend.RemoveAll(ctx, path); err != nil {
		f.logFault(ctx, "delete_failed", path, err)
	}
}

func (f *fileSystem) GetDocument(ctx context.Context, path string) model.Document {
	if isBlank(path) {
		return model.NullDocument()
	}
	info, err := f.backend.Stat(ctx, path)
	if err != nil {
		f.logFault(ctx, "read_stat_failed", path, err)
		return model.NullDocument()
	}
	if info.IsDir {
		return model.NullDocument()
	}
	data, err := f.backend.ReadFile(ctx, path)
	if err != nil {
		f.logFault(ctx, "read_failed", path, err)
		return model.NullDocument()
	}
	if data == nil {
		data = []byte{}
	}
	doc, err := model.NewDocument(filepath.Base(path), data)
	if err != nil {
		// A readable file whose base name is blank cannot be a Document.
		f.log.WarnContext(ctx, "read_rejected", "path", path, "error", err.Error())
		return model.NullDocument()
	}
	return doc
}

// logFault records a swallowed backend error. Missing paths are expected and
// only logged at debug level.
func (f *fileSystem) logFault(ctx context.Context, msg, path string, err error) {
	if storage.IsNotFound(err) {
		f.log.DebugContext(ctx, msg, "path", path, "error", err.Error())
		return
	}
	f.log.WarnContext(ctx, msg, "path", path, "error", err.Error())
}
