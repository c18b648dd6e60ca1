// Package s3 implements the remote snapshot cache against any S3-compatible
// object store.
package s3

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.trai.ch/impact/internal/core/domain"
	"go.trai.ch/impact/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RemoteCache = (*Cache)(nil)

// Config carries the connection settings for the remote cache. An empty
// Endpoint or Bucket produces a disabled cache whose Fetch always misses and
// whose Store is a no-op, so callers degrade naturally.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// Cache stores zstd-compressed graph snapshots keyed by config hash.
type Cache struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a Cache. With no endpoint or bucket configured it returns a
// disabled instance and no error.
func New(cfg Config) (*Cache, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return &Cache{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize remote cache client")
	}

	return &Cache{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Enabled reports whether a remote endpoint is configured.
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Fetch downloads and decompresses the snapshot for the given config hash.
func (c *Cache) Fetch(ctx context.Context, configHash string) ([]byte, error) {
	if !c.Enabled() {
		return nil, domain.ErrRemoteCacheMiss
	}

	key := c.objectKey(configHash)
	obj, err := c.client.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "remote cache fetch failed"), "key", key)
	}
	defer obj.Close() //nolint:errcheck // best effort close in defer

	compressed, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, zerr.With(domain.ErrRemoteCacheMiss, "key", key)
		}
		return nil, zerr.With(zerr.Wrap(err, "remote cache read failed"), "key", key)
	}

	reader, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decompress snapshot"), "key", key)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decompress snapshot"), "key", key)
	}
	return data, nil
}

// Store compresses and uploads the snapshot under the given config hash.
func (c *Cache) Store(ctx context.Context, configHash string, snapshot []byte) error {
	if !c.Enabled() {
		return nil
	}

	var buf bytes.Buffer
	writer, err := zstd.NewWriter(&buf)
	if err != nil {
		return zerr.Wrap(err, "failed to compress snapshot")
	}
	if _, err := writer.Write(snapshot); err != nil {
		_ = writer.Close()
		return zerr.Wrap(err, "failed to compress snapshot")
	}
	if err := writer.Close(); err != nil {
		return zerr.Wrap(err, "failed to compress snapshot")
	}

	key := c.objectKey(configHash)
	_, err = c.client.PutObject(ctx, c.bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/zstd",
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "remote cache upload failed"), "key", key)
	}
	return nil
}

// objectKey derives the deterministic object name for a config hash.
func (c *Cache) objectKey(configHash string) string {
	return path.Join(c.prefix, "graph-"+configHash+".json.zst")
}
