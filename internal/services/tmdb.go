package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/anaphygon/filmdex/internal/shared"
	"golang.org/x/time/rate"
)

// fallbackYear is used when TMDB returns no release date.
const fallbackYear = 2024

// TMDBService implements [Metadata] against The Movie Database API.
//
// Each fetch performs two calls: movie details and credits (for the
// director). Requests share a rate limiter so bulk imports stay inside
// the API quota.
type TMDBService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTMDBService creates a TMDB client. The base URL defaults to the
// public v3 API and the client to [http.DefaultClient]. requestsPerSec
// values below 1 disable throttling.
func NewTMDBService(apiKey, baseURL string, client *http.Client, requestsPerSec int) *TMDBService {
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	if requestsPerSec >= 1 {
		limit = rate.Limit(requestsPerSec)
	}

	return &TMDBService{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Name implements [Metadata].
func (t *TMDBService) Name() string { return "TMDB" }

// movieResponse is the subset of the TMDB movie details payload we consume.
type movieResponse struct {
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// creditsResponse is the subset of the TMDB credits payload we consume.
type creditsResponse struct {
	Crew []struct {
		Job  string `json:"job"`
		Name string `json:"name"`
	} `json:"crew"`
}

// FetchMovie implements [Metadata].
func (t *TMDBService) FetchMovie(ctx context.Context, id string) (*MovieData, error) {
	if t.apiKey == "" {
		return nil, shared.ErrMissingAPIKey
	}

	var movie movieResponse
	if err := t.get(ctx, fmt.Sprintf("/movie/%s", id), &movie); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %s: %w", id, err)
	}

	year := fallbackYear
	if movie.ReleaseDate != "" {
		parsed, err := strconv.Atoi(strings.SplitN(movie.ReleaseDate, "-", 2)[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse release date %q: %w", movie.ReleaseDate, err)
		}
		year = parsed
	}

	genre := "Unknown"
	if len(movie.Genres) > 0 {
		genre = movie.Genres[0].Name
	}

	var credits creditsResponse
	if err := t.get(ctx, fmt.Sprintf("/movie/%s/credits", id), &credits); err != nil {
		return nil, fmt.Errorf("failed to fetch credits for %s: %w", id, err)
	}

	director := "Unknown"
	for _, member := range credits.Crew {
		if member.Job == "Director" {
			director = member.Name
			break
		}
	}

	return &MovieData{
		ID:         id,
		Title:      movie.Title,
		Director:   director,
		Genre:      genre,
		Year:       year,
		Synopsis:   movie.Overview,
		PosterPath: movie.PosterPath,
	}, nil
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (t *TMDBService) get(ctx context.Context, path string, out any) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	url := fmt.Sprintf("%s%s?api_key=%s", t.baseURL, path, t.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
