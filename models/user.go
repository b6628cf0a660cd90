package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchItem is one entry of a user's embedded watch list. At most one entry
// exists per tmdbId within a single user document.
type WatchItem struct {
	TmdbID    int64    `bson:"tmdbId" json:"tmdbId"`
	Rating    *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Favorite  bool     `bson:"favorite" json:"favorite"`
	MediaType string   `bson:"media_type" json:"media_type"`
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	// Password holds the bcrypt digest. It is never serialized outward and is
	// projected out of reads unless the caller explicitly asks for it.
	Password  string      `bson:"password" json:"-"`
	MovieList []WatchItem `bson:"movieList" json:"movieList"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the public projection of a user account.
type Profile struct {
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	CreatedAt           time.Time `json:"createdAt"`
	FavoriteMoviesCount int       `json:"favoriteMoviesCount"`
}
