package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"snapshare/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
	cfg         ClientConfig
}

func New(cfg ClientConfig) (*Client, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.Secure,
		Region:          cfg.Region,
		TrailingHeaders: true,
	})
	if err != nil {
		logger.Error("failed to initialize minio client", "err", err)

		return nil, err
	}

	return &Client{
		MinioClient: client,
		cfg:         cfg,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.MinioClient.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := c.MinioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: c.cfg.Region}); err != nil {
		return fmt.Errorf("make bucket %s: %w", bucket, err)
	}
	logger.Info("created minio bucket", "bucket", bucket)

	return nil
}

// BaseURL is the scheme and host objects are reachable on.
func (c *Client) BaseURL() string {
	return c.MinioClient.EndpointURL().String()
}
