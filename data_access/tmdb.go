package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TMDBClient is a thin pass-through client for the TMDB v3 API. Responses are
// relayed to the caller without reshaping.
type TMDBClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Genre as returned by the TMDB genre list endpoints; the only payload the
// proxy actually decodes, to merge movie and TV genres into one map.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

func (c *TMDBClient) Get(ctx context.Context, endpoint string, params map[string]string) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("tmdb api key not configured")
	}

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("language", "pt-BR")
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *TMDBClient) MovieGenres(ctx context.Context) ([]Genre, error) {
	return c.genres(ctx, "/genre/movie/list")
}

func (c *TMDBClient) TVGenres(ctx context.Context) ([]Genre, error) {
	return c.genres(ctx, "/genre/tv/list")
}

func (c *TMDBClient) genres(ctx context.Context, endpoint string) ([]Genre, error) {
	raw, err := c.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var out genreListResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}
