package utils

import (
	"context"

	"debatearena/db"
	"debatearena/services"
	"debatearena/store"

	"go.uber.org/zap"
)

// SeedDemoData populates two demo users with opposing claims so the
// matcher has something to surface on a fresh install. No-op when any
// claims already exist.
func SeedDemoData() {
	ctx := context.Background()
	rdb := db.GetRedisClient()
	claims := store.NewClaimStore(rdb)
	users := services.NewUserService(store.NewProfileStore(db.MongoDatabase), rdb)

	owners, err := claims.Owners(ctx)
	if err != nil || len(owners) > 0 {
		return
	}

	seed := []struct {
		name, bio, claim string
	}{
		{"alice", "Optimist", "sky is blue"},
		{"bob", "Contrarian", "sky is not blue"},
	}
	for _, s := range seed {
		if _, err := users.Register(ctx, s.name, s.bio); err != nil {
			continue
		}
		if _, err := claims.Append(ctx, s.name, s.claim); err != nil {
			zap.L().Warn("seed claim failed", zap.String("user", s.name), zap.Error(err))
		}
	}
	zap.L().Info("seeded demo users")
}
