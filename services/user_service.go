package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

// UserService manages the embedded watch list and the profile projection.
// Watch-list mutations are read-modify-write over the user document;
// concurrent writers to the same account may lose an update.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// AddOrUpdateMovie upserts a watch-list entry keyed by tmdbId: an existing
// entry is updated in place, otherwise a new one is appended.
func (s *UserService) AddOrUpdateMovie(ctx context.Context, userID primitive.ObjectID, req *models.WatchItemRequest) (*models.WatchItem, error) {
	if req.TmdbID == nil || req.MediaType == "" {
		return nil, apperrors.Validation("tmdbId and media_type are required")
	}
	if req.MediaType != "movie" && req.MediaType != "tv" {
		return nil, apperrors.Validation(`invalid media_type: must be "movie" or "tv"`)
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := models.WatchItem{
		TmdbID:    *req.TmdbID,
		Rating:    req.Rating,
		Favorite:  req.Favorite,
		MediaType: req.MediaType,
	}

	updated := false
	for i := range user.MovieList {
		if user.MovieList[i].TmdbID == entry.TmdbID {
			user.MovieList[i] = entry
			updated = true
			break
		}
	}
	if !updated {
		user.MovieList = append(user.MovieList, entry)
	}

	if err := s.users.ReplaceMovieList(ctx, user.ID, user.MovieList); err != nil {
		return nil, apperrors.Infrastructure("saving watch list", err)
	}
	return &entry, nil
}

// RemoveMovie deletes the entry with the given tmdbId. Removing an id that is
// not in the list is an error, not a silent no-op.
func (s *UserService) RemoveMovie(ctx context.Context, userID primitive.ObjectID, tmdbID int64) ([]models.WatchItem, error) {
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.WatchItem, 0, len(user.MovieList))
	for _, item := range user.MovieList {
		if item.TmdbID != tmdbID {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(user.MovieList) {
		return nil, apperrors.NotFound("movie not found in user list")
	}

	if err := s.users.ReplaceMovieList(ctx, user.ID, filtered); err != nil {
		return nil, apperrors.Infrastructure("saving watch list", err)
	}
	return filtered, nil
}

func (s *UserService) GetMovies(ctx context.Context, userID primitive.ObjectID) ([]models.WatchItem, error) {
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.MovieList == nil {
		return []models.WatchItem{}, nil
	}
	return user.MovieList, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites := 0
	for _, item := range user.MovieList {
		if item.Favorite {
			favorites++
		}
	}
	return &models.Profile{
		Name:                user.Name,
		Email:               user.Email,
		CreatedAt:           user.CreatedAt,
		FavoriteMoviesCount: favorites,
	}, nil
}

func (s *UserService) fetchUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Infrastructure("looking up account", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	return user, nil
}
