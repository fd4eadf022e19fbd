package services_test

import (
	"context"
	"testing"

	"debatearena/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContradictionsExcludeRequester(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	_, err := a.claims.Append(ctx, "alice", "sky is blue")
	require.NoError(t, err)
	_, err = a.claims.Append(ctx, "bob", "sky is not blue")
	require.NoError(t, err)
	_, err = a.claims.Append(ctx, "carol", "grass is green")
	require.NoError(t, err)

	contradictions, err := a.matcher.Contradictions(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, contradictions, 2)
	assert.NotContains(t, contradictions, "alice")
	require.Len(t, contradictions["bob"], 1)
	assert.Equal(t, "sky is not blue", contradictions["bob"][0].Text)
}

func TestFindOpponentsFlattens(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	_, err := a.claims.Append(ctx, "alice", "sky is blue")
	require.NoError(t, err)
	bobClaim, err := a.claims.Append(ctx, "bob", "sky is not blue")
	require.NoError(t, err)

	opponents, err := a.matcher.FindOpponents(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, opponents, 1)
	assert.Equal(t, models.Opponent{
		Opponent: "bob",
		ClaimID:  bobClaim.ID,
		Text:     "sky is not blue",
	}, opponents[0])
}

func TestFindOpponentsNoOtherClaims(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	_, err := a.claims.Append(ctx, "alice", "sky is blue")
	require.NoError(t, err)

	opponents, err := a.matcher.FindOpponents(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, opponents)
}
