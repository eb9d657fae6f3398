package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/endoclin/admin/internal"
	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "endoclin:session:"

// RedisSessionStore keeps each namespace in one hash.
type RedisSessionStore struct {
	client *redis.Client
	logger internal.Logger
}

func NewRedisSessionStore(redisURL string, logger internal.Logger) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Errorf("storage: invalid redis url: %v", err)
		return nil, fmt.Errorf("redis url: %w", err)
	}
	return NewRedisSessionStoreWithClient(redis.NewClient(opt), logger), nil
}

func NewRedisSessionStoreWithClient(client *redis.Client, logger internal.Logger) *RedisSessionStore {
	return &RedisSessionStore{client: client, logger: logger}
}

func (r *RedisSessionStore) key(namespace string) string {
	return redisSessionPrefix + namespace
}

func (r *RedisSessionStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, r.key(namespace), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Errorf("storage: redis get %s: %v", key, err)
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisSessionStore) Set(ctx context.Context, namespace, key, value string) error {
	if err := r.client.HSet(ctx, r.key(namespace), key, value).Err(); err != nil {
		r.logger.Errorf("storage: redis set %s: %v", key, err)
		return err
	}
	return nil
}

func (r *RedisSessionStore) Remove(ctx context.Context, namespace string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.HDel(ctx, r.key(namespace), keys...).Err(); err != nil {
		r.logger.Errorf("storage: redis remove: %v", err)
		return err
	}
	return nil
}

func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

var _ SessionStore = (*RedisSessionStore)(nil)
