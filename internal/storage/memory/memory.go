// Package memory is the in-process SessionStore, used when no Redis is configured.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"costela-bot/internal/order"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Storage keeps sessions serialized, so callers never share a *order.Session.
type Storage struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int64]entry
}

func New(ttl time.Duration) *Storage {
	return &Storage{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int64]entry),
	}
}

func (s *Storage) Load(_ context.Context, chatID int64) (*order.Session, error) {
	s.mu.Lock()
	e, ok := s.entries[chatID]
	if ok && s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, chatID)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return order.NewSession(), nil
	}

	var session order.Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *Storage) Save(_ context.Context, chatID int64, session *order.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[chatID] = entry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}
