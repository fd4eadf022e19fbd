package services

import (
	"context"
	"fmt"
	"strconv"

	"debatearena/db"
	"debatearena/models"

	"github.com/redis/go-redis/v9"
)

// ComputeWinner tallies messages per sender over the full history. The
// participant with more messages wins; ties, including the empty
// history, go to userA. Deterministic for a fixed log.
func ComputeWinner(history []models.Message, userA, userB string) (winner, loser string) {
	counts := make(map[string]int, 2)
	for _, m := range history {
		counts[m.From]++
	}
	if counts[userA] >= counts[userB] {
		return userA, userB
	}
	return userB, userA
}

// queueSettlement queues the outcome writes: increment the winner's
// wins and the loser's losses, then overwrite both leaderboard scores
// with wins - losses. The overwrite keeps the leaderboard derivable
// from the counters; an increment would drift.
func queueSettlement(ctx context.Context, pipe redis.Pipeliner, winner, loser string, winnerStats, loserStats models.Stats) {
	pipe.HIncrBy(ctx, db.StatsKey(winner), "wins", 1)
	pipe.HIncrBy(ctx, db.StatsKey(loser), "losses", 1)

	winnerStats.Wins++
	loserStats.Losses++
	pipe.ZAdd(ctx, db.LeaderboardKey, redis.Z{
		Score:  float64(winnerStats.Score()),
		Member: winner,
	})
	pipe.ZAdd(ctx, db.LeaderboardKey, redis.Z{
		Score:  float64(loserStats.Score()),
		Member: loser,
	})
}

// readStats loads a user's counters through any command runner,
// including an open transaction.
func readStats(ctx context.Context, c redis.Cmdable, user string) (models.Stats, error) {
	raw, err := c.HGetAll(ctx, db.StatsKey(user)).Result()
	if err != nil {
		return models.Stats{}, fmt.Errorf("read stats: %w", err)
	}
	wins, _ := strconv.Atoi(raw["wins"])
	losses, _ := strconv.Atoi(raw["losses"])
	return models.Stats{Wins: wins, Losses: losses}, nil
}
