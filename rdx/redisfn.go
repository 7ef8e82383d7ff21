package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"tripnest/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init dials redis using REDIS_ADDR. Returns false when redis is not
// configured or unreachable; callers fall back to file storage.
func Init() bool {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return false
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(globals.Ctx, 2*time.Second)
	defer cancel()
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v", addr, err)
		Conn = nil
		return false
	}
	return true
}

func Available() bool {
	return Conn != nil
}

func RdxGet(key string) (string, error) {
	ctx, cancel := context.WithTimeout(globals.Ctx, 2*time.Second)
	defer cancel()
	val, err := Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(key, value string) error {
	ctx, cancel := context.WithTimeout(globals.Ctx, 2*time.Second)
	defer cancel()
	return Conn.Set(ctx, key, value, 0).Err()
}

func RdxDel(key string) error {
	ctx, cancel := context.WithTimeout(globals.Ctx, 2*time.Second)
	defer cancel()
	return Conn.Del(ctx, key).Err()
}
