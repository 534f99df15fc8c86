package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
)

const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// MinIOConfig holds object storage settings for the MinIO backend.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects and configures the platform backend.
// Root confines the paths HTTP clients can reach.
type StorageConfig struct {
	Backend  string
	Root     string
	FileMode fs.FileMode
	MinIO    MinIOConfig
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string
	ListenHost         string
	Port               string
	LogLevel           string
	MaxUploadBytes     int
	ShutdownTimeoutSec int
	Storage            StorageConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:    getEnv("APP_HOST", "localhost:8080"),
		ListenHost: getEnv("LISTEN_HOST", "127.0.0.1"),
		Port:       getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		MaxUploadBytes:     getEnvInt("MAX_UPLOAD_BYTES", 4*1024*1024),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Storage: StorageConfig{
			Backend:  strings.ToLower(getEnv("STORAGE_BACKEND", BackendLocal)),
			Root:     getEnv("DOCFS_ROOT", "/var/lib/docfs"),
			FileMode: getEnvOctal("FILE_MODE", 0o644),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvOctal parses permission bits such as "0600" or "600".
func getEnvOctal(key string, def fs.FileMode) fs.FileMode {
	if v := os.Getenv(key); v != "" {
		m, err := strconv.ParseUint(strings.TrimPrefix(v, "0o"), 8, 32)
		if err == nil && m <= 0o777 {
			return fs.FileMode(m)
		}
	}
	return def
}
