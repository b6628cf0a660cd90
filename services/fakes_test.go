package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diegoperpetuo/perpetual-backend/data_access"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

// In-memory stand-ins for the persistence collaborators.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return errors.New("duplicate key error")
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if user.MovieList == nil {
		user.MovieList = []models.WatchItem{}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			clone.Password = ""
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmailWithPassword(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	clone.Password = ""
	clone.MovieList = append([]models.WatchItem(nil), u.MovieList...)
	return &clone, nil
}

func (f *fakeUserStore) ReplaceMovieList(_ context.Context, id primitive.ObjectID, list []models.WatchItem) error {
	if f.err != nil {
		return f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	u.MovieList = append([]models.WatchItem(nil), list...)
	return nil
}

type fakeMovieStore struct {
	movies map[primitive.ObjectID]*models.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: map[primitive.ObjectID]*models.Movie{}}
}

func (f *fakeMovieStore) Create(_ context.Context, movie *models.Movie) error {
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = time.Now()
	clone := *movie
	f.movies[movie.ID] = &clone
	return nil
}

func (f *fakeMovieStore) FindAllByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Movie, error) {
	out := []models.Movie{}
	for _, m := range f.movies {
		if m.Owner == owner {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) FindByIDAndOwner(_ context.Context, id, owner primitive.ObjectID) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok || m.Owner != owner {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}

func (f *fakeMovieStore) UpdateByIDAndOwner(_ context.Context, id, owner primitive.ObjectID, fields bson.M) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok || m.Owner != owner {
		return nil, nil
	}
	if v, ok := fields["title"]; ok {
		m.Title = v.(string)
	}
	if v, ok := fields["genre"]; ok {
		m.Genre = v.(string)
	}
	if v, ok := fields["releaseYear"]; ok {
		year := v.(int)
		m.ReleaseYear = &year
	}
	if v, ok := fields["rating"]; ok {
		rating := v.(float64)
		m.Rating = &rating
	}
	clone := *m
	return &clone, nil
}

func (f *fakeMovieStore) DeleteByIDAndOwner(_ context.Context, id, owner primitive.ObjectID) (bool, error) {
	m, ok := f.movies[id]
	if !ok || m.Owner != owner {
		return false, nil
	}
	delete(f.movies, id)
	return true, nil
}

type fakeCommentStore struct {
	comments map[primitive.ObjectID]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[primitive.ObjectID]*models.Comment{}}
}

func (f *fakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	clone := *comment
	f.comments[comment.ID] = &clone
	return nil
}

func (f *fakeCommentStore) FindByMedia(_ context.Context, tmdbID int64, mediaType string) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.TmdbID == tmdbID && c.MediaType == mediaType {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) FindByAuthor(_ context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCommentStore) UpdateText(_ context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	c.Text = text
	clone := *c
	return &clone, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.comments, id)
	return nil
}

type fakeTMDB struct {
	responses map[string]json.RawMessage
	movie     []data_access.Genre
	tv        []data_access.Genre
	err       error
}

func (f *fakeTMDB) Get(_ context.Context, endpoint string, _ map[string]string) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	raw, ok := f.responses[endpoint]
	if !ok {
		return nil, errors.New("tmdb status 404")
	}
	return raw, nil
}

func (f *fakeTMDB) MovieGenres(context.Context) ([]data_access.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movie, nil
}

func (f *fakeTMDB) TVGenres(context.Context) ([]data_access.Genre, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tv, nil
}
