package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"snapshare/internal/domain/repository/broker"
	"snapshare/pkg/logger"
)

type Receiver struct {
	redis     *redis.Client
	stream    string
	group     string
	blockTime time.Duration
	minIdle   time.Duration
}

func NewReceiver(client *Client) *Receiver {
	return &Receiver{
		redis:     client.redis,
		stream:    client.stream,
		group:     client.group,
		blockTime: 5 * time.Second,
		minIdle:   client.claimMinIdle,
	}
}

func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.redis == nil {
		logger.Error("redis client is nil in receiver")

		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consumeLoop(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consumeLoop(ctx context.Context, out chan broker.Message, consumerName string) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			logger.Info("message receiving context cancelled", "consumer", consumerName)

			return
		default:
			r.claimAndEmit(ctx, out, consumerName)
			r.readAndEmit(ctx, out, consumerName)
		}
	}
}

func (r *Receiver) readAndEmit(ctx context.Context, out chan broker.Message, consumerName string) {
	entries, err := r.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, ">"},
		Count:    1,
		Block:    r.blockTime,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.Error("failed to read from redis stream group", "err", err)
			time.Sleep(time.Second)
		}

		return
	}

	for _, stream := range entries {
		if !r.emit(ctx, out, consumerName, stream.Messages) {
			return
		}
	}
}

// claimAndEmit takes over entries that were nacked, or left behind by a
// consumer that went away, once they have been idle for minIdle.
func (r *Receiver) claimAndEmit(ctx context.Context, out chan broker.Message, consumerName string) {
	start := "0-0"
	for {
		msgs, next, err := r.redis.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   r.stream,
			Group:    r.group,
			Consumer: consumerName,
			MinIdle:  r.minIdle,
			Start:    start,
			Count:    10,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				logger.Error("failed to reclaim pending entries", "err", err)
			}

			return
		}

		if len(msgs) > 0 {
			logger.Info("reclaimed pending entries", "consumer", consumerName, "count", len(msgs))
		}
		if !r.emit(ctx, out, consumerName, msgs) {
			return
		}

		if next == "0-0" || next == "" {
			return
		}
		start = next
	}
}

func (r *Receiver) emit(ctx context.Context, out chan broker.Message, consumerName string,
	msgs []redis.XMessage,
) bool {
	for _, msg := range msgs {
		body, ok := msg.Values["body"].(string)
		if !ok {
			logger.Error("invalid body type in redis message", "id", msg.ID)

			continue
		}

		select {
		case out <- &RedisMessage{
			stream:      r.stream,
			group:       r.group,
			consumer:    consumerName,
			id:          msg.ID,
			body:        body,
			redisClient: r.redis,
		}:
		case <-ctx.Done():
			return false
		}
	}

	return true
}
