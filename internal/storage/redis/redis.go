package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"costela-bot/internal/order"
	"costela-bot/internal/storage"
)

// KV is the slice of the Redis client the session store needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Storage keeps chat sessions as JSON with a sliding TTL.
type Storage struct {
	kv  KV
	ttl time.Duration
}

var _ storage.SessionStore = (*Storage)(nil)

func New(kv KV, ttl time.Duration) *Storage {
	return &Storage{kv: kv, ttl: ttl}
}

func (s *Storage) Load(ctx context.Context, chatID int64) (*order.Session, error) {
	data, err := s.kv.Get(ctx, storage.SessionKey(chatID))
	if errors.Is(err, redis.Nil) {
		return order.NewSession(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session order.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &session, nil
}

func (s *Storage) Save(ctx context.Context, chatID int64, session *order.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.kv.Set(ctx, storage.SessionKey(chatID), data, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
