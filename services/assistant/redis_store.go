// File: services/assistant/redis_store.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"skyline/models"

	"github.com/go-redis/redis/v8"
)

const (
	searchCtxPrefix  = "ast:search:"
	bookingCtxPrefix = "ast:booking:"
)

// RedisContextStore keeps contexts in Redis with a TTL, so abandoned
// sessions age out instead of accumulating.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Search(ctx context.Context, sessionID string) (models.SearchContext, error) {
	var sc models.SearchContext
	data, err := s.client.Get(ctx, searchCtxPrefix+sessionID).Result()
	if err == redis.Nil {
		return sc, nil
	}
	if err != nil {
		return sc, err
	}
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return models.SearchContext{}, err
	}
	return sc, nil
}

func (s *RedisContextStore) PutSearch(ctx context.Context, sessionID string, sc models.SearchContext) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, searchCtxPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) ClearSearch(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, searchCtxPrefix+sessionID).Err()
}

func (s *RedisContextStore) Booking(ctx context.Context, sessionID string) (*models.BookingContext, error) {
	data, err := s.client.Get(ctx, bookingCtxPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bc models.BookingContext
	if err := json.Unmarshal([]byte(data), &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (s *RedisContextStore) PutBooking(ctx context.Context, sessionID string, bc *models.BookingContext) error {
	b, err := json.Marshal(bc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, bookingCtxPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) ClearBooking(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, bookingCtxPrefix+sessionID).Err()
}
