// Package storage keeps one order.Session per chat between updates.
package storage

import (
	"context"
	"fmt"

	"costela-bot/internal/order"
)

// SessionStore loads and saves chat sessions. Load never fails on a chat it
// has not seen: it returns a fresh session instead.
type SessionStore interface {
	Load(ctx context.Context, chatID int64) (*order.Session, error)
	Save(ctx context.Context, chatID int64, session *order.Session) error
}

func SessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}
