package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Connect parses url and pings the server so a misconfigured cache fails at
// startup instead of on the first request.
func Connect(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
