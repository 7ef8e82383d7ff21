package storage

import (
	"fmt"

	"tripnest/rdx"
)

// RedisBlob stores each key as a plain redis string via the shared rdx
// connection.
type RedisBlob struct{}

func NewRedisBlob() *RedisBlob {
	return &RedisBlob{}
}

func (r *RedisBlob) Get(key string) ([]byte, error) {
	val, err := rdx.RdxGet(key)
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %s: %v", ErrUnavailable, key, err)
	}
	if val == "" {
		return nil, nil
	}
	return []byte(val), nil
}

func (r *RedisBlob) Set(key string, data []byte) error {
	if err := rdx.RdxSet(key, string(data)); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", ErrUnavailable, key, err)
	}
	return nil
}
