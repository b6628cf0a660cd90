package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diegoperpetuo/perpetual-backend/models"
)

// MovieRepository scopes every single-record operation by (_id, owner), so a
// record owned by someone else decodes to nothing, same as a missing one.
type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{collection: db.Collection("movies")}
}

func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		movie.ID = oid
	}
	return nil
}

func (r *MovieRepository) FindAllByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpdateByIDAndOwner applies the given field set and returns the updated
// document, or nil when no owned record matched.
func (r *MovieRepository) UpdateByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID, fields bson.M) (*models.Movie, error) {
	fields["updatedAt"] = time.Now()
	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) DeleteByIDAndOwner(ctx context.Context, id, owner primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
