package broker

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultClaimMinIdle = 60_000

type Client struct {
	redis        *redis.Client
	stream       string
	group        string
	claimMinIdle time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, err
	}

	minIdle := cfg.ClaimMinIdle
	if minIdle <= 0 {
		minIdle = defaultClaimMinIdle
	}

	return &Client{
		redis:        rdb,
		stream:       cfg.StreamName,
		group:        cfg.GroupName,
		claimMinIdle: time.Duration(minIdle) * time.Millisecond,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
