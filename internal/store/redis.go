package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis stores values under a key prefix in a Redis instance
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to addr and verifies the connection
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Redis{client: client, prefix: "wthr:"}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value with no expiry; values live until overwritten or cleared
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}
