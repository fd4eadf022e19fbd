package models

import "time"

const (
	UserStatusInactive = "inactive"
	UserStatusActive   = "active"
	UserStatusBanned   = "banned"
)

// User defines a user profile. The id doubles as the display name.
type User struct {
	ID        string    `bson:"_id" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Bio       string    `bson:"bio" json:"bio"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
