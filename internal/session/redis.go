package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mechhub/portal/internal/domain/booking"
)

const (
	wizardKeyPrefix = "wizard:"
	tokenKeyPrefix  = "fcm:"
)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// -------- Wizard --------

func (s *RedisStore) SaveWizard(ctx context.Context, id string, w *booking.Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, wizardKeyPrefix+id, data, s.ttl).Err()
}

func (s *RedisStore) LoadWizard(ctx context.Context, id string) (*booking.Wizard, error) {
	data, err := s.rdb.Get(ctx, wizardKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var w booking.Wizard
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) DeleteWizard(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, wizardKeyPrefix+id).Err()
}

// -------- Device token --------

func (s *RedisStore) SaveDeviceToken(ctx context.Context, userID, token string) error {
	return s.rdb.Set(ctx, tokenKeyPrefix+userID, token, s.ttl).Err()
}

func (s *RedisStore) DeviceToken(ctx context.Context, userID string) (string, error) {
	token, err := s.rdb.Get(ctx, tokenKeyPrefix+userID).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) ClearDeviceToken(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, tokenKeyPrefix+userID).Err()
}

var _ Store = (*RedisStore)(nil)
