package services

import (
	"context"
	"fmt"

	"debatearena/models"
	"debatearena/store"
)

// MatcherService surfaces contradiction candidates: every claim made by
// anyone other than the requester. There is no semantic analysis, no
// ranking and no deduplication; a full scan over all claim logs.
type MatcherService struct {
	claims *store.ClaimStore
}

func NewMatcherService(claims *store.ClaimStore) *MatcherService {
	return &MatcherService{claims: claims}
}

// Contradictions maps every other user with at least one claim to that
// user's full claim list. If any log is unreadable the whole operation
// fails; there are no partial results.
func (s *MatcherService) Contradictions(ctx context.Context, user string) (map[string][]models.Claim, error) {
	owners, err := s.claims.Owners(ctx)
	if err != nil {
		return nil, fmt.Errorf("match scan: %w", err)
	}
	out := make(map[string][]models.Claim)
	for _, owner := range owners {
		if owner == user {
			continue
		}
		claims, err := s.claims.List(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("match scan: %w", err)
		}
		if len(claims) > 0 {
			out[owner] = claims
		}
	}
	return out, nil
}

// FindOpponents flattens the contradiction map into one candidate row
// per opposing claim.
func (s *MatcherService) FindOpponents(ctx context.Context, user string) ([]models.Opponent, error) {
	contradictions, err := s.Contradictions(ctx, user)
	if err != nil {
		return nil, err
	}
	opponents := make([]models.Opponent, 0)
	for owner, claims := range contradictions {
		for _, claim := range claims {
			opponents = append(opponents, models.Opponent{
				Opponent: owner,
				ClaimID:  claim.ID,
				Text:     claim.Text,
			})
		}
	}
	return opponents, nil
}
