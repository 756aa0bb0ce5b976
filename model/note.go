package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note always carries a valid category reference and an owner reference.
// Every query against notes is filtered by user_id so a note is only
// reachable through the identity matching its owner.
type Note struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"category_id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// NoteUpdate carries the fields of a partial update. Nil fields are left
// untouched in the stored document.
type NoteUpdate struct {
	Title      *string
	Content    *string
	CategoryID *primitive.ObjectID
}
