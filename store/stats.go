package store

import (
	"context"
	"fmt"
	"strconv"

	"debatearena/db"
	"debatearena/models"

	"github.com/redis/go-redis/v9"
)

// StatsStore reads the win/loss counters and the leaderboard ZSET.
// Writes happen inside the finish-negotiation transaction, not here.
type StatsStore struct {
	rdb *redis.Client
}

func NewStatsStore(rdb *redis.Client) *StatsStore {
	return &StatsStore{rdb: rdb}
}

func (s *StatsStore) Get(ctx context.Context, user string) (models.Stats, error) {
	raw, err := s.rdb.HGetAll(ctx, db.StatsKey(user)).Result()
	if err != nil {
		return models.Stats{}, fmt.Errorf("fetch stats: %w", err)
	}
	return statsFromHash(raw), nil
}

// TopN returns the best n leaderboard entries, highest score first.
func (s *StatsStore) TopN(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	rows, err := s.rdb.ZRevRangeWithScores(ctx, db.LeaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		user, _ := row.Member.(string)
		entries = append(entries, models.LeaderboardEntry{
			User:  user,
			Score: int(row.Score),
		})
	}
	return entries, nil
}

func statsFromHash(raw map[string]string) models.Stats {
	wins, _ := strconv.Atoi(raw["wins"])
	losses, _ := strconv.Atoi(raw["losses"])
	return models.Stats{Wins: wins, Losses: losses}
}
