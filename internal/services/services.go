// package services defines interface Metadata for fetching movie
// attributes from external HTTP APIs (TMDB).
package services

import "context"

// Metadata is the external movie-metadata collaborator: it resolves a
// catalog id to structured movie attributes.
type Metadata interface {
	// FetchMovie retrieves movie details and credits for the given id.
	FetchMovie(ctx context.Context, id string) (*MovieData, error)

	// Name returns the name of the backing service (e.g. "TMDB").
	Name() string
}

// MovieData holds the attributes fetched for one movie.
type MovieData struct {
	ID         string
	Title      string
	Director   string
	Genre      string
	Year       int
	Synopsis   string
	PosterPath string
}
