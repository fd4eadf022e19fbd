package store

import (
	"context"
	"fmt"

	"debatearena/db"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Inbox is the fire-and-forget notification sink. Clients poll and
// drain it; there is no push channel.
type Inbox struct {
	rdb *redis.Client
}

func NewInbox(rdb *redis.Client) *Inbox {
	return &Inbox{rdb: rdb}
}

// Push appends a human-readable event string to the recipient's inbox.
// Delivery failures are logged but never fail the triggering operation.
func (s *Inbox) Push(ctx context.Context, user, message string) {
	if err := s.rdb.RPush(ctx, db.InboxKey(user), message).Err(); err != nil {
		zap.L().Error("inbox delivery failed",
			zap.String("user", user),
			zap.Error(err))
	}
}

// Drain returns all pending notifications and clears the inbox.
func (s *Inbox) Drain(ctx context.Context, user string) ([]string, error) {
	key := db.InboxKey(user)
	messages, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("drain inbox: %w", err)
	}
	if len(messages) > 0 {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("clear inbox: %w", err)
		}
	}
	return messages, nil
}
