// Package events caches event listings. The cache is best-effort: a miss
// or a redis failure falls through to the database, and every event write
// clears it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/collegevents/backend/internal/domain/entity"
)

const (
	KeyAll      = "events:all"
	KeyUpcoming = "events:upcoming"
	KeyPast     = "events:past"
)

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Get(ctx context.Context, key string) ([]entity.Event, bool) {
	eventBytes, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var events []entity.Event
	if err = json.Unmarshal([]byte(eventBytes), &events); err != nil {
		return nil, false
	}

	return events, true
}

func (s *Storage) Set(ctx context.Context, key string, events []entity.Event, expiration time.Duration) {
	eventBytes, _ := json.Marshal(events)
	s.redis.Set(ctx, key, eventBytes, expiration)
}

// Clear drops every listing key; called on any event write.
func (s *Storage) Clear(ctx context.Context) {
	s.redis.Del(ctx, KeyAll, KeyUpcoming, KeyPast)
}
