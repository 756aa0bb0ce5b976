package model

import "time"

// User is an account record. Email and username are unique across the
// system (enforced by indexes in repository.SetupIndexes). Password holds
// the bcrypt hash, never the plain text, and is excluded from JSON output.
type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
