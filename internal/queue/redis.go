package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis implements Broker over Redis lists the way the rest of the pipeline
// expects: BLPOP with no timeout for jobs, RPUSH for results.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Dequeue(ctx context.Context, channel string) (string, error) {
	vals, err := r.client.BLPop(ctx, 0, channel).Result()
	if err != nil {
		return "", fmt.Errorf("blpop %s: %w", channel, err)
	}
	if len(vals) != 2 {
		return "", fmt.Errorf("blpop %s: unexpected reply of %d values", channel, len(vals))
	}
	return vals[1], nil
}

func (r *Redis) Publish(ctx context.Context, channel string, payload string) error {
	if err := r.client.RPush(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", channel, err)
	}
	return nil
}

func (r *Redis) Close() error { return r.client.Close() }
