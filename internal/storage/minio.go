package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docfs/internal/config"
)

// minioStorage implements Backend on an S3-compatible bucket (MinIO, AWS S3, etc.).
// Directories are key prefixes: "/data/in/a.csv" is stored as "data/in/a.csv" and
// "/data/in" exists as long as at least one key starts with "data/in/".
// It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a Backend backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Backend, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	base, err := minio.DefaultTransport(cfg.UseSSL)
	if err != nil {
		return nil, fmt.Errorf("create minio transport: %w", err)
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: otelhttp.NewTransport(base),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket}, nil
}

// objectKey maps an absolute path onto a bucket key. The root maps to "".
func objectKey(path string) string {
	return strings.Trim(filepath.ToSlash(filepath.Clean(path)), "/")
}

func dirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}

func (m *minioStorage) Stat(ctx context.Context, path string) (EntryInfo, error) {
	key := objectKey(path)
	if key == "" {
		return EntryInfo{Name: "/", IsDir: true}, nil
	}

	st, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return EntryInfo{
			Name:    filepath.Base(key),
			Size:    st.Size,
			ModTime: st.LastModified,
		}, nil
	}
	if !isNoSuchKey(err) {
		return EntryInfo{}, fmt.Errorf("stat object %s: %w", key, err)
	}

	hasChildren, err := m.hasPrefix(ctx, dirPrefix(key))
	if err != nil {
		return EntryInfo{}, err
	}
	if !hasChildren {
		return EntryInfo{}, fmt.Errorf("stat %s: %w", path, ErrNotFound)
	}
	return EntryInfo{Name: filepath.Base(key), IsDir: true}, nil
}

func (m *minioStorage) hasPrefix(ctx context.Context, prefix string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix, MaxKeys: 1}) {
		if obj.Err != nil {
			return false, fmt.Errorf("list prefix %s: %w", prefix, obj.Err)
		}
		return true, nil
	}
	return false, nil
}

func (m *minioStorage) ReadDir(ctx context.Context, path string) ([]string, error) {
	prefix := dirPrefix(objectKey(path))

	var names []string
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list prefix %s: %w", prefix, obj.Err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(obj.Key, prefix), "/")
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func (m *minioStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	key := objectKey(path)
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("get object %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return data, nil
}

func (m *minioStorage) WriteFile(ctx context.Context, path string, data []byte) error {
	key := objectKey(path)
	if key == "" {
		return fmt.Errorf("write %s: path resolves to the bucket root", path)
	}
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (m *minioStorage) RemoveAll(ctx context.Context, path string) error {
	key := objectKey(path)
	if key == "" {
		return errors.New("refusing to remove the bucket root")
	}

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil && !isNoSuchKey(err) {
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	objects := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: dirPrefix(key), Recursive: true})
	var firstErr error
	for rerr := range m.client.RemoveObjects(ctx, m.bucket, objects, minio.RemoveObjectsOptions{}) {
		if firstErr == nil {
			firstErr = fmt.Errorf("remove object %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	return firstErr
}
