package services

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/data_access"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

// Persistence collaborators, satisfied by the data_access repositories and by
// in-memory fakes in tests.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ReplaceMovieList(ctx context.Context, id primitive.ObjectID, list []models.WatchItem) error
}

type MovieStore interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindAllByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Movie, error)
	FindByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID) (*models.Movie, error)
	UpdateByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*models.Movie, error)
	DeleteByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID) (bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByMedia(ctx context.Context, tmdbID int64, mediaType string) ([]models.Comment, error)
	FindByAuthor(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TMDBAPI interface {
	Get(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error)
	MovieGenres(ctx context.Context) ([]data_access.Genre, error)
	TVGenres(ctx context.Context) ([]data_access.Genre, error)
}
