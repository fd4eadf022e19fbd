package services_test

import (
	"context"
	"errors"
	"testing"

	"debatearena/models"
	"debatearena/services"
	"debatearena/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessageFlipsTurn(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	posts := []string{"alice", "bob", "alice", "alice", "bob"}
	for i, from := range posts {
		require.NoError(t, a.debates.PostMessage(ctx, debateID, from, "point"))

		debate, err := a.debates.Get(ctx, debateID)
		require.NoError(t, err)
		assert.Equal(t, debate.Other(from), debate.Turn, "post %d", i)

		history, err := a.debates.History(ctx, debateID)
		require.NoError(t, err)
		assert.Len(t, history, i+1)
	}
}

func TestPostMessageValidation(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	err := a.debates.PostMessage(ctx, debateID, "", "text")
	assert.True(t, errors.Is(err, services.ErrValidation))
	err = a.debates.PostMessage(ctx, debateID, "alice", "")
	assert.True(t, errors.Is(err, services.ErrValidation))
	err = a.debates.PostMessage(ctx, "no-such-debate", "alice", "text")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	err = a.debates.PostMessage(ctx, debateID, "carol", "text")
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestPostMessageNotifiesOtherParticipant(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")
	a.inbox.Drain(ctx, "bob")

	require.NoError(t, a.debates.PostMessage(ctx, debateID, "alice", "the sky is blue"))

	messages, err := a.inbox.Drain(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "the sky is blue")
	assert.Contains(t, messages[0], "alice")
}

func TestPostMessageToEndedDebateForbidden(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	result, err := a.debates.Finish(ctx, debateID, "alice", false)
	require.NoError(t, err)
	require.True(t, result.Ended)

	err = a.debates.PostMessage(ctx, debateID, "alice", "too late")
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestHistoryUnknownDebateIsEmpty(t *testing.T) {
	a := newArena(t)

	history, err := a.debates.History(context.Background(), "no-such-debate")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestFinishDeclinedEndsWithoutWinner(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")
	a.inbox.Drain(ctx, "bob")

	result, err := a.debates.Finish(ctx, debateID, "alice", false)
	require.NoError(t, err)
	assert.True(t, result.Ended)
	assert.Empty(t, result.Winner)

	debate, err := a.debates.Get(ctx, debateID)
	require.NoError(t, err)
	assert.Equal(t, models.DebateStatusEnded, debate.Status)
	assert.Empty(t, debate.Winner)
	assert.NotZero(t, debate.EndedAt)

	messages, err := a.inbox.Drain(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "No winner")
}

func TestFinishFirstVoteAwaitsConfirmation(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")
	a.inbox.Drain(ctx, "bob")

	result, err := a.debates.Finish(ctx, debateID, "alice", true)
	require.NoError(t, err)
	assert.True(t, result.AwaitingConfirmation)
	assert.False(t, result.Ended)

	// Debate is still active.
	debate, err := a.debates.Get(ctx, debateID)
	require.NoError(t, err)
	assert.Equal(t, models.DebateStatusActive, debate.Status)

	messages, err := a.inbox.Drain(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "finish")
}

func TestFinishMutualAgreementCountsMessages(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	// 3 messages from alice, 2 from bob.
	for _, from := range []string{"alice", "bob", "alice", "bob", "alice"} {
		require.NoError(t, a.debates.PostMessage(ctx, debateID, from, "point"))
	}

	result, err := a.debates.Finish(ctx, debateID, "alice", true)
	require.NoError(t, err)
	require.True(t, result.AwaitingConfirmation)

	result, err = a.debates.Finish(ctx, debateID, "bob", true)
	require.NoError(t, err)
	assert.True(t, result.Ended)
	assert.Equal(t, "alice", result.Winner)

	debate, err := a.debates.Get(ctx, debateID)
	require.NoError(t, err)
	assert.Equal(t, models.DebateStatusEnded, debate.Status)
	assert.Equal(t, "alice", debate.Winner)

	// Settlement updated both counters and leaderboard scores.
	winnerStats, err := a.stats.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Wins: 1, Losses: 0}, winnerStats)
	loserStats, err := a.stats.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Wins: 0, Losses: 1}, loserStats)

	top, err := a.stats.TopN(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, models.LeaderboardEntry{User: "alice", Score: 1}, top[0])
	assert.Equal(t, models.LeaderboardEntry{User: "bob", Score: -1}, top[1])
}

func TestFinishZeroMessagesTieFavorsFirstParticipant(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	_, err := a.debates.Finish(ctx, debateID, "bob", true)
	require.NoError(t, err)
	result, err := a.debates.Finish(ctx, debateID, "alice", true)
	require.NoError(t, err)

	assert.True(t, result.Ended)
	assert.Equal(t, "alice", result.Winner)
}

func TestFinishOutcomeIsOrderIndependent(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()

	run := func(first, second string) string {
		debateID := a.startDebate(t, "alice", "bob", "sky color")
		require.NoError(t, a.debates.PostMessage(ctx, debateID, "bob", "one"))
		require.NoError(t, a.debates.PostMessage(ctx, debateID, "bob", "two"))
		require.NoError(t, a.debates.PostMessage(ctx, debateID, "alice", "one"))

		result, err := a.debates.Finish(ctx, debateID, first, true)
		require.NoError(t, err)
		require.True(t, result.AwaitingConfirmation)
		result, err = a.debates.Finish(ctx, debateID, second, true)
		require.NoError(t, err)
		require.True(t, result.Ended)
		return result.Winner
	}

	assert.Equal(t, "bob", run("alice", "bob"))
	assert.Equal(t, "bob", run("bob", "alice"))
}

func TestFinishDeclineBeatsPendingWant(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	_, err := a.debates.Finish(ctx, debateID, "alice", true)
	require.NoError(t, err)
	result, err := a.debates.Finish(ctx, debateID, "bob", false)
	require.NoError(t, err)

	assert.True(t, result.Ended)
	assert.Empty(t, result.Winner)

	// No settlement happened.
	stats, err := a.stats.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{}, stats)
}

func TestFinishEndedDebateForbidden(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	_, err := a.debates.Finish(ctx, debateID, "alice", false)
	require.NoError(t, err)

	_, err = a.debates.Finish(ctx, debateID, "bob", true)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestFinishValidation(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	_, err := a.debates.Finish(ctx, debateID, "", true)
	assert.True(t, errors.Is(err, services.ErrValidation))
	_, err = a.debates.Finish(ctx, "no-such-debate", "alice", true)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	_, err = a.debates.Finish(ctx, debateID, "carol", true)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

// The leaderboard must stay derivable from the counters after every
// settlement, not just the first.
func TestLeaderboardConsistentAcrossOutcomes(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()

	settle := func(winnerPosts int) {
		debateID := a.startDebate(t, "alice", "bob", "rematch")
		for i := 0; i < winnerPosts; i++ {
			require.NoError(t, a.debates.PostMessage(ctx, debateID, "alice", "point"))
		}
		_, err := a.debates.Finish(ctx, debateID, "alice", true)
		require.NoError(t, err)
		_, err = a.debates.Finish(ctx, debateID, "bob", true)
		require.NoError(t, err)
	}

	settle(1)
	settle(2)
	settle(3)

	aliceStats, err := a.stats.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Wins: 3, Losses: 0}, aliceStats)
	bobStats, err := a.stats.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Wins: 0, Losses: 3}, bobStats)

	top, err := a.stats.TopN(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, aliceStats.Score(), top[0].Score)
	assert.Equal(t, bobStats.Score(), top[1].Score)
}

func TestSummaryRoundTrip(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	summary, err := a.debates.Summary(ctx, "some-debate")
	require.NoError(t, err)
	assert.Empty(t, summary)

	require.NoError(t, a.debates.SetSummary(ctx, "some-debate", "a spirited exchange"))
	summary, err = a.debates.Summary(ctx, "some-debate")
	require.NoError(t, err)
	assert.Equal(t, "a spirited exchange", summary)
}

func TestListForUserIncludesLastMessage(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	a.addUser("bob")
	ctx := context.Background()
	debateID := a.startDebate(t, "alice", "bob", "sky color")

	require.NoError(t, a.debates.PostMessage(ctx, debateID, "alice", "first"))
	require.NoError(t, a.debates.PostMessage(ctx, debateID, "bob", "latest"))

	listings, err := a.debates.ListForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].LastMessage)
	assert.Equal(t, "latest", listings[0].LastMessage.Text)
	assert.Equal(t, "bob", listings[0].LastMessage.From)
}
