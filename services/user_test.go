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

func TestRegisterStartsInactive(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	user, err := a.users.Register(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)
	assert.Equal(t, models.UserStatusInactive, user.Status)
	assert.NotEmpty(t, user.Bio)

	waiting, err := a.rdb.SMembers(ctx, "users:inactive").Result()
	require.NoError(t, err)
	assert.Contains(t, waiting, "alice")
}

func TestRegisterDuplicateName(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	_, err := a.users.Register(ctx, "alice", "first")
	require.NoError(t, err)
	_, err = a.users.Register(ctx, "alice", "second")
	assert.True(t, errors.Is(err, store.ErrDuplicate))
}

func TestRegisterRequiresName(t *testing.T) {
	a := newArena(t)

	_, err := a.users.Register(context.Background(), "", "bio")
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestActivationLeavesWaitSet(t *testing.T) {
	a := newArena(t)
	ctx := context.Background()

	_, err := a.users.Register(ctx, "alice", "")
	require.NoError(t, err)

	user, err := a.users.UpdateProfile(ctx, "alice", "", models.UserStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, user.Status)

	waiting, err := a.rdb.SMembers(ctx, "users:inactive").Result()
	require.NoError(t, err)
	assert.NotContains(t, waiting, "alice")
}

func TestUpdateProfileUnknownStatus(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")

	_, err := a.users.UpdateProfile(context.Background(), "alice", "", "sleeping")
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	a := newArena(t)

	_, err := a.users.UpdateProfile(context.Background(), "ghost", "new bio", "")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestBan(t *testing.T) {
	a := newArena(t)
	a.addUser("alice")
	ctx := context.Background()

	require.NoError(t, a.users.Ban(ctx, "alice"))

	user, err := a.users.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, user.Status)
}
