package testutil

import (
	"context"
	"fmt"
	"sync"

	"debatearena/models"
	"debatearena/store"
)

// FakeProfiles is an in-memory stand-in for the Mongo profile store,
// used by service and handler tests.
type FakeProfiles struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewFakeProfiles() *FakeProfiles {
	return &FakeProfiles{users: make(map[string]models.User)}
}

// Add inserts a profile directly, bypassing validation.
func (f *FakeProfiles) Add(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
}

func (f *FakeProfiles) Create(_ context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; ok {
		return fmt.Errorf("user %s: %w", user.ID, store.ErrDuplicate)
	}
	f.users[user.ID] = user
	return nil
}

func (f *FakeProfiles) Get(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}
	return &user, nil
}

func (f *FakeProfiles) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[id]
	return ok, nil
}

func (f *FakeProfiles) Update(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}
	if bio, ok := fields["bio"].(string); ok {
		user.Bio = bio
	}
	if status, ok := fields["status"].(string); ok {
		user.Status = status
	}
	f.users[id] = user
	return nil
}

func (f *FakeProfiles) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}

func (f *FakeProfiles) DropAll(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = make(map[string]models.User)
	return nil
}
