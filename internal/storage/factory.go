package storage

import (
	"fmt"

	"docfs/internal/config"
)

// New returns the Backend selected by cfg.Backend.
func New(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "", config.BackendLocal:
		return NewLocal(cfg.FileMode), nil
	case config.BackendMinIO:
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
