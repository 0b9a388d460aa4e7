package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iac-appeals/aip-sync/internal/model"
)

type redisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func newRedisSessionStore(client *redis.Client, prefix string, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *redisSessionStore) key(userID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, userID)
}

func (s *redisSessionStore) Get(ctx context.Context, userID string) (*model.Appeal, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading appeal session: %w", err)
	}

	var appeal model.Appeal
	if err := json.Unmarshal(data, &appeal); err != nil {
		return nil, fmt.Errorf("decoding appeal session: %w", err)
	}
	return &appeal, nil
}

func (s *redisSessionStore) Save(ctx context.Context, userID string, appeal *model.Appeal) error {
	data, err := json.Marshal(appeal)
	if err != nil {
		return fmt.Errorf("encoding appeal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing appeal session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("deleting appeal session: %w", err)
	}
	return nil
}
