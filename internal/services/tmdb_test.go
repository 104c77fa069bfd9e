package services_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/anaphygon/filmdex/internal/services"
	"github.com/anaphygon/filmdex/internal/shared"
	helpers "github.com/anaphygon/filmdex/internal/testing"
)

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(t *testing.T, movieJSON, creditsJSON string) *services.TMDBService {
	t.Helper()
	rt := helpers.NewMockRoundTripper(map[string]*http.Response{
		"/3/movie/27205":         jsonResponse(movieJSON),
		"/3/movie/27205/credits": jsonResponse(creditsJSON),
	}, nil)
	client := &http.Client{Transport: rt}
	return services.NewTMDBService("test-key", "https://api.themoviedb.org/3", client, 0)
}

func TestTMDBFetchMovie(t *testing.T) {
	t.Run("ParsesDetailsAndCredits", func(t *testing.T) {
		svc := newTestClient(t,
			`{"title":"Inception","overview":"A thief steals secrets.","release_date":"2010-07-16","poster_path":"/inc.jpg","genres":[{"name":"Science Fiction"},{"name":"Action"}]}`,
			`{"crew":[{"job":"Producer","name":"Emma Thomas"},{"job":"Director","name":"Christopher Nolan"}]}`,
		)

		movie, err := svc.FetchMovie(context.Background(), "27205")
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		if movie.Title != "Inception" {
			t.Errorf("title = %q", movie.Title)
		}
		if movie.Year != 2010 {
			t.Errorf("year = %d, want 2010", movie.Year)
		}
		if movie.Genre != "Science Fiction" {
			t.Errorf("genre = %q, want first genre", movie.Genre)
		}
		if movie.Director != "Christopher Nolan" {
			t.Errorf("director = %q", movie.Director)
		}
		if movie.PosterPath != "/inc.jpg" {
			t.Errorf("posterPath = %q", movie.PosterPath)
		}
	})

	t.Run("DefaultsWhenFieldsMissing", func(t *testing.T) {
		svc := newTestClient(t,
			`{"title":"Obscure","overview":"","release_date":"","genres":[]}`,
			`{"crew":[{"job":"Writer","name":"Someone"}]}`,
		)

		movie, err := svc.FetchMovie(context.Background(), "27205")
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		if movie.Year != 2024 {
			t.Errorf("year = %d, want fallback 2024", movie.Year)
		}
		if movie.Genre != "Unknown" {
			t.Errorf("genre = %q, want Unknown", movie.Genre)
		}
		if movie.Director != "Unknown" {
			t.Errorf("director = %q, want Unknown", movie.Director)
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		svc := services.NewTMDBService("", "", nil, 0)

		_, err := svc.FetchMovie(context.Background(), "27205")
		if !errors.Is(err, shared.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})

	t.Run("HTTPErrorStatus", func(t *testing.T) {
		rt := helpers.NewMockRoundTripper(map[string]*http.Response{
			"/3/movie/404": {StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader(`{"status_message":"not found"}`))},
		}, nil)
		svc := services.NewTMDBService("test-key", "", &http.Client{Transport: rt}, 0)

		_, err := svc.FetchMovie(context.Background(), "404")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("err = %v, want ErrAPIRequest", err)
		}
	})

	t.Run("TransportError", func(t *testing.T) {
		rt := helpers.NewMockRoundTripper(nil, errors.New("connection refused"))
		svc := services.NewTMDBService("test-key", "", &http.Client{Transport: rt}, 0)

		if _, err := svc.FetchMovie(context.Background(), "27205"); err == nil {
			t.Error("expected transport error to propagate")
		}
	})
}
