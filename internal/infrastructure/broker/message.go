package broker

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisMessage struct {
	stream      string
	group       string
	consumer    string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) Body() string {
	return m.body
}

func (m *RedisMessage) Ack() error {
	return m.redisClient.XAck(context.Background(), m.stream, m.group, m.id).Err()
}

// Nack leaves the entry in the group's pending list. The receiver reclaims
// it with XAUTOCLAIM once it has been idle for the configured min idle time.
func (m *RedisMessage) Nack() error {
	if m.redisClient == nil {
		return errors.New("redis not initialized")
	}

	return nil
}
