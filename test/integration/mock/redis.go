package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by an in-process miniredis instance. The
// summary cache in tests talks to this exactly as it would to a real server.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisOnce.Do(func() {
			mini, err := miniredis.Run()
			if err != nil {
				panic(err)
			}
			redisConn = redis.NewClient(&redis.Options{Addr: mini.Addr()})
		})
	}

	return redisConn
}

// ClearRedis flushes all cached data between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
