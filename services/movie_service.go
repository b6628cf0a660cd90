package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

// MovieService implements the owner-scoped CRUD over tracked movie records.
// A record belonging to another account is reported as not found, never as
// forbidden, so record existence does not leak.
type MovieService struct {
	movies MovieStore
}

func NewMovieService(movies MovieStore) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) Create(ctx context.Context, owner primitive.ObjectID, req *models.CreateMovieRequest) (*models.Movie, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}

	movie := &models.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Rating:      req.Rating,
		Owner:       owner,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, apperrors.Infrastructure("creating movie", err)
	}
	return movie, nil
}

func (s *MovieService) GetAll(ctx context.Context, owner primitive.ObjectID) ([]models.Movie, error) {
	movies, err := s.movies.FindAllByOwner(ctx, owner)
	if err != nil {
		return nil, apperrors.Infrastructure("listing movies", err)
	}
	return movies, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string, owner primitive.ObjectID) (*models.Movie, error) {
	movieID, err := parseMovieID(id)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.FindByIDAndOwner(ctx, movieID, owner)
	if err != nil {
		return nil, apperrors.Infrastructure("looking up movie", err)
	}
	if movie == nil {
		return nil, apperrors.NotFound("movie not found")
	}
	return movie, nil
}

// Update requires a title; the other fields are set only when present, so an
// omitted field keeps its stored value.
func (s *MovieService) Update(ctx context.Context, id string, owner primitive.ObjectID, req *models.UpdateMovieRequest) (*models.Movie, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title is required")
	}

	fields := bson.M{"title": req.Title}
	if req.Genre != "" {
		fields["genre"] = req.Genre
	}
	if req.ReleaseYear != nil {
		fields["releaseYear"] = *req.ReleaseYear
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	return s.applyUpdate(ctx, id, owner, fields)
}

// PartialUpdate touches only the fields present in the request.
func (s *MovieService) PartialUpdate(ctx context.Context, id string, owner primitive.ObjectID, req *models.PatchMovieRequest) (*models.Movie, error) {
	fields := bson.M{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.Validation("title is required")
		}
		fields["title"] = *req.Title
	}
	if req.Genre != nil {
		fields["genre"] = *req.Genre
	}
	if req.ReleaseYear != nil {
		fields["releaseYear"] = *req.ReleaseYear
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}
	return s.applyUpdate(ctx, id, owner, fields)
}

func (s *MovieService) Delete(ctx context.Context, id string, owner primitive.ObjectID) error {
	movieID, err := parseMovieID(id)
	if err != nil {
		return err
	}
	deleted, err := s.movies.DeleteByIDAndOwner(ctx, movieID, owner)
	if err != nil {
		return apperrors.Infrastructure("deleting movie", err)
	}
	if !deleted {
		return apperrors.NotFound("movie not found")
	}
	return nil
}

func (s *MovieService) applyUpdate(ctx context.Context, id string, owner primitive.ObjectID, fields bson.M) (*models.Movie, error) {
	movieID, err := parseMovieID(id)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.UpdateByIDAndOwner(ctx, movieID, owner, fields)
	if err != nil {
		return nil, apperrors.Infrastructure("updating movie", err)
	}
	if movie == nil {
		return nil, apperrors.NotFound("movie not found")
	}
	return movie, nil
}

// parseMovieID treats a malformed id like a record that does not exist.
func parseMovieID(id string) (primitive.ObjectID, error) {
	movieID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound("movie not found")
	}
	return movieID, nil
}
