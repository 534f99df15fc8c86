package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfs/internal/config"
)

func TestNew(t *testing.T) {
	b, err := New(config.StorageConfig{Backend: config.BackendLocal})
	require.NoError(t, err)
	assert.IsType(t, &localStorage{}, b)
	assert.Equal(t, 0o644, int(b.(*localStorage).fileMode))

	_, err = New(config.StorageConfig{Backend: "ftp"})
	assert.ErrorContains(t, err, `unknown storage backend "ftp"`)
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{"missing endpoint", config.MinIOConfig{}, "endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(config.StorageConfig{Backend: config.BackendMinIO, MinIO: tt.cfg})
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
