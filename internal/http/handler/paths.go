package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// PathResolver maps client paths onto the document root. Clients address the
// tree with slash-rooted paths ("/reports/q1.csv"); "/" is the root itself.
type PathResolver struct {
	root string
}

// NewPathResolver returns a resolver confined to root, made absolute.
func NewPathResolver(root string) (PathResolver, error) {
	if strings.TrimSpace(root) == "" {
		return PathResolver{}, errors.New("document root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return PathResolver{}, fmt.Errorf("resolve document root %q: %w", root, err)
	}
	return PathResolver{root: abs}, nil
}

// Root returns the host directory client paths resolve under.
func (r PathResolver) Root() string {
	return r.root
}

// Resolve returns the host path for a client path. A blank path is returned
// blank so the filesystem applies its own rules for missing input. Relative
// paths, ".." segments and NUL bytes are rejected.
func (r PathResolver) Resolve(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", nil
	}
	if !strings.HasPrefix(p, "/") || strings.ContainsRune(p, 0) {
		return "", errInvalidPath
	}
	for _, seg := range strings.FieldsFunc(p, isPathSeparator) {
		if seg == ".." {
			return "", errInvalidPath
		}
	}

	full := filepath.Join(r.root, filepath.Clean("/"+p))
	rel, err := filepath.Rel(r.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errInvalidPath
	}
	return full, nil
}

func isPathSeparator(c rune) bool {
	return c == '/' || c == '\\'
}
