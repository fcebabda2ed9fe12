package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the Redis connection backing the job queues that the
// stock alert and reconciliation workers consume. The URL comes from
// REDIS_URL and accepts the full redis:// option syntax.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Fail at startup rather than on the first enqueue
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}
