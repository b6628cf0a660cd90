package data_access

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTMDBGetRequiresAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewTMDBClient("", srv.URL)
	if _, err := client.Get(context.Background(), "/movie/popular", nil); err == nil {
		t.Fatal("Get with empty api key: want error")
	}
	if called {
		t.Error("no request should reach the API without a key")
	}
}

func TestTMDBGetBuildsQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := NewTMDBClient("k123", srv.URL)
	raw, err := client.Get(context.Background(), "/search/movie", map[string]string{"query": "dune", "page": "2"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != `{"results":[]}` {
		t.Errorf("body = %s, want verbatim relay", raw)
	}
	if gotPath != "/search/movie" {
		t.Errorf("path = %q", gotPath)
	}
	for _, pair := range []string{"api_key=k123", "language=pt-BR", "query=dune", "page=2"} {
		if !strings.Contains(gotQuery, pair) {
			t.Errorf("query %q missing %q", gotQuery, pair)
		}
	}
}

func TestTMDBGetNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewTMDBClient("k123", srv.URL)
	_, err := client.Get(context.Background(), "/movie/0", nil)
	if err == nil {
		t.Fatal("Get on 404 upstream: want error")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want upstream status in message", err)
	}
}

func TestTMDBGenreDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/genre/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]}`))
	}))
	defer srv.Close()

	client := NewTMDBClient("k123", srv.URL)
	genres, err := client.MovieGenres(context.Background())
	if err != nil {
		t.Fatalf("MovieGenres: %v", err)
	}
	if len(genres) != 2 || genres[0].ID != 28 || genres[1].Name != "Drama" {
		t.Errorf("genres = %+v", genres)
	}
}
