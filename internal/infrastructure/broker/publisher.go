package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends message to the stream under the "body" field.
func (p *Publisher) Publish(ctx context.Context, message string) error {
	if p.client == nil || p.client.redis == nil {
		return errors.New("redis not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]interface{}{"body": message},
	}).Err()
}

// NopPublisher drops every message. It stands in when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string) error { return nil }
