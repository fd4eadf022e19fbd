package store

import (
	"context"
	"fmt"

	"debatearena/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileStore keeps user profiles in the "users" collection, keyed by
// display name (_id = name).
type ProfileStore struct {
	col *mongo.Collection
}

func NewProfileStore(database *mongo.Database) *ProfileStore {
	return &ProfileStore{col: database.Collection("users")}
}

func (s *ProfileStore) Create(ctx context.Context, user models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("user %s: %w", user.ID, ErrDuplicate)
	}
	return err
}

func (s *ProfileStore) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *ProfileStore) Exists(ctx context.Context, id string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies a partial field update. Empty fields maps are a no-op.
func (s *ProfileStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := s.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// DropAll removes every profile. Admin bulk wipe only.
func (s *ProfileStore) DropAll(ctx context.Context) error {
	return s.col.Drop(ctx)
}
