package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"debatearena/db"
	"debatearena/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClaimStore is the append-only per-user claim log, one Redis list per
// owner.
type ClaimStore struct {
	rdb *redis.Client
}

func NewClaimStore(rdb *redis.Client) *ClaimStore {
	return &ClaimStore{rdb: rdb}
}

func (s *ClaimStore) Append(ctx context.Context, user, text string) (*models.Claim, error) {
	claim := models.Claim{
		ID:   uuid.NewString(),
		Text: text,
		Ts:   time.Now().UnixMilli(),
	}
	raw, err := json.Marshal(claim)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.RPush(ctx, db.ClaimsKey(user), raw).Err(); err != nil {
		return nil, fmt.Errorf("append claim: %w", err)
	}
	return &claim, nil
}

func (s *ClaimStore) List(ctx context.Context, user string) ([]models.Claim, error) {
	raw, err := s.rdb.LRange(ctx, db.ClaimsKey(user), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	claims := make([]models.Claim, 0, len(raw))
	for _, item := range raw {
		var c models.Claim
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			return nil, fmt.Errorf("decode claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// Remove deletes a claim by id. The log carries no index, so this is a
// linear scan over the owner's list.
func (s *ClaimStore) Remove(ctx context.Context, user, claimID string) error {
	key := db.ClaimsKey(user)
	raw, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("scan claims: %w", err)
	}
	for _, item := range raw {
		var c models.Claim
		if err := json.Unmarshal([]byte(item), &c); err != nil {
			continue
		}
		if c.ID == claimID {
			return s.rdb.LRem(ctx, key, 0, item).Err()
		}
	}
	return fmt.Errorf("claim %s: %w", claimID, ErrNotFound)
}

// Owners returns every user id that owns at least one claim log.
func (s *ClaimStore) Owners(ctx context.Context) ([]string, error) {
	var owners []string
	iter := s.rdb.Scan(ctx, 0, "claims:*", 100).Iterator()
	for iter.Next(ctx) {
		owners = append(owners, strings.TrimPrefix(iter.Val(), "claims:"))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan claim logs: %w", err)
	}
	return owners, nil
}

// RemoveAll drops a user's whole claim log.
func (s *ClaimStore) RemoveAll(ctx context.Context, user string) error {
	return s.rdb.Del(ctx, db.ClaimsKey(user)).Err()
}
