package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// RedisStreamSink appends samples to a Redis Stream via XADD, one entry per
// sample, with the JSON document under the "data" field.
type RedisStreamSink struct {
	client *redis.Client
	stream string
}

func NewRedisStreamSink(client *redis.Client, stream string) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream}
}

func (r *RedisStreamSink) Name() string { return "redis-stream" }

func (r *RedisStreamSink) WriteBatch(samples []domain.HeartData) error {
	ctx := context.Background()
	pipe := r.client.Pipeline()

	for _, s := range samples {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal sample: %w", err)
		}
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: r.stream,
			Values: map[string]interface{}{
				"data":     string(payload),
				"scenario": s.Scenario,
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis xadd to %s: %w", r.stream, err)
	}
	return nil
}

var _ ports.Sink = (*RedisStreamSink)(nil)
