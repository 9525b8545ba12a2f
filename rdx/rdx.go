package rdx

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// New builds the Redis client used for the reconcile-event channel.
func New() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
