package services_test

import (
	"context"
	"testing"
	"time"

	"debatearena/models"
	"debatearena/services"
	"debatearena/store"
	"debatearena/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type arena struct {
	rdb         *redis.Client
	profiles    *testutil.FakeProfiles
	claims      *store.ClaimStore
	inbox       *store.Inbox
	stats       *store.StatsStore
	users       *services.UserService
	matcher     *services.MatcherService
	invitations *services.InvitationService
	debates     *services.DebateService
}

func newArena(t *testing.T) *arena {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	profiles := testutil.NewFakeProfiles()
	claims := store.NewClaimStore(rdb)
	inbox := store.NewInbox(rdb)

	return &arena{
		rdb:         rdb,
		profiles:    profiles,
		claims:      claims,
		inbox:       inbox,
		stats:       store.NewStatsStore(rdb),
		users:       services.NewUserService(profiles, rdb),
		matcher:     services.NewMatcherService(claims),
		invitations: services.NewInvitationService(rdb, profiles, inbox),
		debates:     services.NewDebateService(rdb, inbox),
	}
}

func (a *arena) addUser(name string) {
	a.profiles.Add(models.User{
		ID:        name,
		Name:      name,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now(),
	})
}

// startDebate runs the invite/accept flow and returns the debate id.
func (a *arena) startDebate(t *testing.T, from, to, topic string) string {
	t.Helper()
	ctx := context.Background()
	invitationID, err := a.invitations.Create(ctx, from, to, topic)
	require.NoError(t, err)
	debateID, err := a.invitations.Accept(ctx, invitationID)
	require.NoError(t, err)
	return debateID
}
