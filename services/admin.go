package services

import (
	"context"
	"fmt"

	"debatearena/db"
	"debatearena/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AdminService performs the destructive operations behind the shared
// admin secret: cascading account purges and the bulk data wipe.
type AdminService struct {
	rdb         *redis.Client
	profiles    Profiles
	claims      *store.ClaimStore
	invitations *InvitationService
}

func NewAdminService(rdb *redis.Client, profiles Profiles, claims *store.ClaimStore, invitations *InvitationService) *AdminService {
	return &AdminService{
		rdb:         rdb,
		profiles:    profiles,
		claims:      claims,
		invitations: invitations,
	}
}

// PurgeUser removes a user and everything keyed to them: profile,
// claims, invitations (sent and received), debate membership list,
// stats, leaderboard entry and inbox. Debates the user took part in
// survive for the counterparty.
func (s *AdminService) PurgeUser(ctx context.Context, id string) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.claims.RemoveAll(ctx, id); err != nil {
		return fmt.Errorf("purge claims: %w", err)
	}
	if err := s.invitations.RemoveAllFor(ctx, id); err != nil {
		return err
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, db.DebatesKey(id))
		pipe.Del(ctx, db.StatsKey(id))
		pipe.Del(ctx, db.InboxKey(id))
		pipe.ZRem(ctx, db.LeaderboardKey, id)
		pipe.SRem(ctx, db.InactiveUsersKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("purge user state: %w", err)
	}
	zap.L().Info("user purged", zap.String("user", id))
	return nil
}

// Wipe clears all arena state and drops every profile.
func (s *AdminService) Wipe(ctx context.Context) error {
	if err := s.rdb.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("wipe arena state: %w", err)
	}
	if err := s.profiles.DropAll(ctx); err != nil {
		return fmt.Errorf("wipe profiles: %w", err)
	}
	zap.L().Warn("all arena data wiped")
	return nil
}
