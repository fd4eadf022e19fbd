package services

import (
	"context"
	"fmt"

	"debatearena/models"
	"debatearena/store"
)

const leaderboardTopN = 5

// ContextService is the read-only aggregator: everything the arena
// knows about one user in a single document. The first failing
// sub-fetch fails the whole call; there is no partial-result mode.
type ContextService struct {
	profiles    Profiles
	claims      *store.ClaimStore
	debates     *DebateService
	stats       *store.StatsStore
	invitations *InvitationService
}

func NewContextService(profiles Profiles, claims *store.ClaimStore, debates *DebateService, stats *store.StatsStore, invitations *InvitationService) *ContextService {
	return &ContextService{
		profiles:    profiles,
		claims:      claims,
		debates:     debates,
		stats:       stats,
		invitations: invitations,
	}
}

func (s *ContextService) Gather(ctx context.Context, user string) (*models.UserContext, error) {
	profile, err := s.profiles.Get(ctx, user)
	if err != nil {
		return nil, err
	}
	claims, err := s.claims.List(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("gather context: %w", err)
	}
	debates, err := s.debates.ListForUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("gather context: %w", err)
	}
	stats, err := s.stats.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("gather context: %w", err)
	}
	leaderboard, err := s.stats.TopN(ctx, leaderboardTopN)
	if err != nil {
		return nil, fmt.Errorf("gather context: %w", err)
	}
	invitations, err := s.invitations.ListPending(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("gather context: %w", err)
	}
	return &models.UserContext{
		User:        user,
		Profile:     *profile,
		Claims:      claims,
		Debates:     debates,
		Stats:       stats,
		Leaderboard: leaderboard,
		Invitations: invitations,
	}, nil
}
