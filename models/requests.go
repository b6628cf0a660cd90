package models

// Request DTOs. Field-presence rules that produce combined error messages
// (register, login, watch-list upsert) are enforced at the service layer, so
// those fields carry no binding tags; everything else is validated at bind
// time.

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type WatchItemRequest struct {
	TmdbID    *int64   `json:"tmdbId"`
	Rating    *float64 `json:"rating"`
	Favorite  bool     `json:"favorite"`
	MediaType string   `json:"media_type"`
}

type CreateMovieRequest struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear *int     `json:"releaseYear"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
}

type UpdateMovieRequest struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear *int     `json:"releaseYear"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
}

// PatchMovieRequest uses pointers throughout so absent fields are left
// untouched by a partial update.
type PatchMovieRequest struct {
	Title       *string  `json:"title"`
	Genre       *string  `json:"genre"`
	ReleaseYear *int     `json:"releaseYear"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=10"`
}

type CreateCommentRequest struct {
	TmdbID    *int64 `json:"tmdbId"`
	MediaType string `json:"mediaType"`
	Text      string `json:"text"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// MultipleItemsRequest asks the TMDB proxy for a batch of titles at once.
type MultipleItemsRequest struct {
	Items []MediaRef `json:"items" binding:"required,min=1,dive"`
}

type MediaRef struct {
	ID        int64  `json:"id" binding:"required"`
	MediaType string `json:"media_type" binding:"required,oneof=movie tv"`
}
