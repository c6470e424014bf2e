package minio

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// Store keeps photo payloads as objects in a single bucket. The object key
// doubles as the binary ref.
type Store struct {
	minioClient *minio.Client
	cfg         StoreConfig
	baseURL     string
}

func NewStore(client *Client, cfg StoreConfig) *Store {
	base := cfg.PublicURL
	if base == "" {
		base = client.BaseURL()
	}

	return &Store{
		minioClient: client.MinioClient,
		cfg:         cfg,
		baseURL:     strings.TrimSuffix(base, "/"),
	}
}

func (s *Store) timeout() time.Duration {
	return time.Duration(s.cfg.Timeout) * time.Millisecond
}

func (s *Store) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return s.baseURL + "/" + s.cfg.Bucket + "/" + strings.Join(parts, "/")
}

// cancelOnClose releases the request context once the caller is done reading.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close()
}
