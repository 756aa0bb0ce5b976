package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a global lookup entity shared by all users. Name is unique.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// DefaultCategoryName is resolved (creating on first use) when a note is
// created without an explicit category.
const DefaultCategoryName = "General"
