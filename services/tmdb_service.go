package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
)

// TMDBService is a thin proxy over the external metadata API. Payloads are
// relayed as-is; only the merged genre map and the batch fetch add anything.
type TMDBService struct {
	api TMDBAPI
}

func NewTMDBService(api TMDBAPI) *TMDBService {
	return &TMDBService{api: api}
}

func (s *TMDBService) PopularMovies(ctx context.Context, page int) (json.RawMessage, error) {
	return s.get(ctx, "/movie/popular", pageParam(page))
}

func (s *TMDBService) NowPlayingMovies(ctx context.Context, page int) (json.RawMessage, error) {
	return s.get(ctx, "/movie/now_playing", pageParam(page))
}

func (s *TMDBService) TrendingMovies(ctx context.Context, timeWindow string) (json.RawMessage, error) {
	if timeWindow != "day" && timeWindow != "week" {
		timeWindow = "day"
	}
	return s.get(ctx, "/trending/movie/"+timeWindow, nil)
}

func (s *TMDBService) PopularTVShows(ctx context.Context, page int) (json.RawMessage, error) {
	return s.get(ctx, "/tv/popular", pageParam(page))
}

func (s *TMDBService) MovieDetails(ctx context.Context, id int64, appendToResponse string) (json.RawMessage, error) {
	return s.details(ctx, "movie", id, appendToResponse)
}

func (s *TMDBService) TVShowDetails(ctx context.Context, id int64, appendToResponse string) (json.RawMessage, error) {
	return s.details(ctx, "tv", id, appendToResponse)
}

func (s *TMDBService) ItemDetails(ctx context.Context, mediaType string, id int64) (json.RawMessage, error) {
	if mediaType != "movie" && mediaType != "tv" {
		return nil, apperrors.Validation(`mediaType must be "movie" or "tv"`)
	}
	return s.details(ctx, mediaType, id, "")
}

// AllGenres merges the movie and TV genre lists into a single id to name map.
func (s *TMDBService) AllGenres(ctx context.Context) (map[int64]string, error) {
	movieGenres, err := s.api.MovieGenres(ctx)
	if err != nil {
		return nil, apperrors.Infrastructure("fetching movie genres", err)
	}
	tvGenres, err := s.api.TVGenres(ctx)
	if err != nil {
		return nil, apperrors.Infrastructure("fetching tv genres", err)
	}

	genres := make(map[int64]string, len(movieGenres)+len(tvGenres))
	for _, g := range movieGenres {
		genres[g.ID] = g.Name
	}
	for _, g := range tvGenres {
		genres[g.ID] = g.Name
	}
	return genres, nil
}

func (s *TMDBService) SearchMulti(ctx context.Context, query string, page int) (json.RawMessage, error) {
	return s.search(ctx, "/search/multi", query, page)
}

func (s *TMDBService) SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error) {
	return s.search(ctx, "/search/movie", query, page)
}

func (s *TMDBService) SearchTVShows(ctx context.Context, query string, page int) (json.RawMessage, error) {
	return s.search(ctx, "/search/tv", query, page)
}

// MultipleItems fetches details for a batch of titles concurrently. Order is
// preserved; items that fail are skipped rather than failing the batch.
func (s *TMDBService) MultipleItems(ctx context.Context, refs []models.MediaRef) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref models.MediaRef) {
			defer wg.Done()
			raw, err := s.details(ctx, ref.MediaType, ref.ID, "")
			if err != nil {
				return
			}
			results[i] = raw
		}(i, ref)
	}
	wg.Wait()

	items := make([]json.RawMessage, 0, len(refs))
	for _, raw := range results {
		if raw != nil {
			items = append(items, raw)
		}
	}
	return items, nil
}

func (s *TMDBService) details(ctx context.Context, mediaType string, id int64, appendToResponse string) (json.RawMessage, error) {
	params := map[string]string{}
	if appendToResponse != "" {
		params["append_to_response"] = appendToResponse
	}
	return s.get(ctx, "/"+mediaType+"/"+strconv.FormatInt(id, 10), params)
}

func (s *TMDBService) search(ctx context.Context, endpoint, query string, page int) (json.RawMessage, error) {
	if query == "" {
		return nil, apperrors.Validation("query is required")
	}
	params := pageParam(page)
	params["query"] = query
	params["include_adult"] = "false"
	return s.get(ctx, endpoint, params)
}

func (s *TMDBService) get(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	raw, err := s.api.Get(ctx, endpoint, params)
	if err != nil {
		return nil, apperrors.Infrastructure("fetching tmdb data", err)
	}
	return raw, nil
}

func pageParam(page int) map[string]string {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	return params
}
