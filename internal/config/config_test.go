package config

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "MinIO")
	t.Setenv("MINIO_BUCKET", "docs")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("FILE_MODE", "0600")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("DOCFS_ROOT", "/srv/docs")
	t.Setenv("LISTEN_HOST", "0.0.0.0")

	cfg := Load()

	assert.Equal(t, BackendMinIO, cfg.Storage.Backend)
	assert.Equal(t, "docs", cfg.Storage.MinIO.Bucket)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, fs.FileMode(0o600), cfg.Storage.FileMode)
	assert.Equal(t, 1024, cfg.MaxUploadBytes)
	assert.Equal(t, "/srv/docs", cfg.Storage.Root)
	assert.Equal(t, "0.0.0.0", cfg.ListenHost)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("PORT", "")
	t.Setenv("FILE_MODE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DOCFS_ROOT", "")
	t.Setenv("LISTEN_HOST", "")

	cfg := Load()

	assert.Equal(t, BackendLocal, cfg.Storage.Backend)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, fs.FileMode(0o644), cfg.Storage.FileMode)
	assert.Equal(t, 10, cfg.ShutdownTimeoutSec)
	assert.Equal(t, "/var/lib/docfs", cfg.Storage.Root)
	assert.Equal(t, "127.0.0.1", cfg.ListenHost)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvOctal(t *testing.T) {
	key := "TEST_MODE_VAR"

	t.Setenv(key, "640")
	assert.Equal(t, fs.FileMode(0o640), getEnvOctal(key, 0o644))

	t.Setenv(key, "0o600")
	assert.Equal(t, fs.FileMode(0o600), getEnvOctal(key, 0o644))

	t.Setenv(key, "999")
	assert.Equal(t, fs.FileMode(0o644), getEnvOctal(key, 0o644))

	t.Setenv(key, "7777")
	assert.Equal(t, fs.FileMode(0o644), getEnvOctal(key, 0o644))
}
