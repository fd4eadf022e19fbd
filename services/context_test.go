package services_test

import (
	"context"
	"errors"
	"testing"

	"debatearena/services"
	"debatearena/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherContext(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	aggregator := services.NewContextService(a.profiles, a.claims, a.debates, a.stats, a.invitations)

	_, err := a.claims.Append(ctx, "alice", "sky is blue")
	require.NoError(t, err)
	debateID := a.startDebate(t, "alice", "bob", "sky color")
	_, err = a.invitations.Create(ctx, "bob", "alice", "round two")
	require.NoError(t, err)

	document, err := aggregator.Gather(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", document.User)
	assert.Equal(t, "alice", document.Profile.ID)
	require.Len(t, document.Claims, 1)
	require.Len(t, document.Debates, 1)
	assert.Equal(t, debateID, document.Debates[0].ID)
	require.Len(t, document.Invitations, 1)
	assert.Equal(t, "bob", document.Invitations[0].FromUser)
}

func TestGatherContextUnknownUserFails(t *testing.T) {
	a := newArena(t)
	aggregator := services.NewContextService(a.profiles, a.claims, a.debates, a.stats, a.invitations)

	_, err := aggregator.Gather(context.Background(), "ghost")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
