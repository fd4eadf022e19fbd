package services

import (
	"context"

	"debatearena/models"
)

// Profiles is the user profile collaborator. The production
// implementation is store.ProfileStore on MongoDB; tests substitute an
// in-memory fake.
type Profiles interface {
	Create(ctx context.Context, user models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	DropAll(ctx context.Context) error
}
