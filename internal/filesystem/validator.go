package filesystem

import (
	"path/filepath"
	"strings"
)

// IsValidDirectory reports whether path is usable as a write target directory:
// non-blank, free of NUL bytes and absolute for the host platform. The path is
// not trimmed: " /tmp" is relative. It does not check that the directory exists.
func IsValidDirectory(path string) bool {
	if isBlank(path) {
		return false
	}
	if strings.ContainsRune(path, 0) {
		return false
	}
	return filepath.IsAbs(path)
}

// isValidName reports whether name can be joined to a directory without
// escaping it.
func isValidName(name string) bool {
	if isBlank(name) || name == "." || name == ".." {
		return false
	}
	if strings.ContainsRune(name, 0) || strings.ContainsRune(name, '/') {
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
