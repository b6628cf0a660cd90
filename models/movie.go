package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a user-owned tracked record. Every read and write is scoped by
// (_id, owner) so records belonging to someone else look like they do not
// exist.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Genre       string             `bson:"genre,omitempty" json:"genre,omitempty"`
	ReleaseYear *int               `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	Rating      *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
