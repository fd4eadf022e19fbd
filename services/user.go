package services

import (
	"context"
	"fmt"
	"time"

	"debatearena/db"
	"debatearena/models"

	"github.com/redis/go-redis/v9"
)

const defaultBio = "No bio provided."

// UserService manages registration and profile updates. New users start
// inactive and sit in the users:inactive set until activated.
type UserService struct {
	profiles Profiles
	rdb      *redis.Client
}

func NewUserService(profiles Profiles, rdb *redis.Client) *UserService {
	return &UserService{profiles: profiles, rdb: rdb}
}

func (s *UserService) Register(ctx context.Context, name, bio string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if bio == "" {
		bio = defaultBio
	}
	user := models.User{
		ID:        name,
		Name:      name,
		Bio:       bio,
		Status:    models.UserStatusInactive,
		CreatedAt: time.Now(),
	}
	if err := s.profiles.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.rdb.SAdd(ctx, db.InactiveUsersKey, name).Err(); err != nil {
		return nil, fmt.Errorf("register inactive user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.profiles.Get(ctx, id)
}

// UpdateProfile applies a partial update. Switching to active removes
// the user from the activation wait set.
func (s *UserService) UpdateProfile(ctx context.Context, id, bio, status string) (*models.User, error) {
	fields := map[string]interface{}{}
	if bio != "" {
		fields["bio"] = bio
	}
	if status != "" {
		switch status {
		case models.UserStatusInactive, models.UserStatusActive, models.UserStatusBanned:
		default:
			return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
		}
		fields["status"] = status
	}
	if err := s.profiles.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	if status == models.UserStatusActive {
		if err := s.rdb.SRem(ctx, db.InactiveUsersKey, id).Err(); err != nil {
			return nil, fmt.Errorf("clear inactive flag: %w", err)
		}
	}
	return s.profiles.Get(ctx, id)
}

// Ban marks a user banned. Banned users keep their data but can no
// longer start invitations or post.
func (s *UserService) Ban(ctx context.Context, id string) error {
	return s.profiles.Update(ctx, id, map[string]interface{}{
		"status": models.UserStatusBanned,
	})
}
