package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anaphygon/filmdex/internal/services"
	"github.com/charmbracelet/log"
)

// MovieCache stores fetched TMDB movie data in a SQLite table so repeat
// lookups of the same id skip the network.
type MovieCache struct {
	db *sql.DB
}

// NewMovieCache creates a MovieCache over an open database. The schema
// is expected to be migrated already (see shared.RunMigrations).
func NewMovieCache(db *sql.DB) *MovieCache {
	return &MovieCache{db: db}
}

// Get returns the cached movie for id, or (nil, nil) on a cache miss.
func (c *MovieCache) Get(id string) (*services.MovieData, error) {
	query := `
		SELECT id, title, director, genre, year, synopsis, poster_path
		FROM movie_cache
		WHERE id = ?
	`

	var movie services.MovieData
	err := c.db.QueryRow(query, id).Scan(
		&movie.ID, &movie.Title, &movie.Director, &movie.Genre,
		&movie.Year, &movie.Synopsis, &movie.PosterPath,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie cache: %w", err)
	}
	return &movie, nil
}

// Put stores a fetched movie. An id already present is silently kept.
func (c *MovieCache) Put(movie *services.MovieData) error {
	query := `
		INSERT OR IGNORE INTO movie_cache (id, title, director, genre, year, synopsis, poster_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := c.db.Exec(query,
		movie.ID, movie.Title, movie.Director, movie.Genre,
		movie.Year, movie.Synopsis, movie.PosterPath,
	)
	if err != nil {
		return fmt.Errorf("failed to cache movie: %w", err)
	}
	return nil
}

// CachedMetadata wraps a [services.Metadata] with a [MovieCache]:
// hits are served from the cache, misses are fetched and stored.
// Cache failures degrade to a plain fetch and are logged only.
type CachedMetadata struct {
	inner  services.Metadata
	cache  *MovieCache
	logger *log.Logger
}

// NewCachedMetadata wraps inner with the given cache.
func NewCachedMetadata(inner services.Metadata, cache *MovieCache, logger *log.Logger) *CachedMetadata {
	return &CachedMetadata{inner: inner, cache: cache, logger: logger}
}

// Name implements [services.Metadata].
func (m *CachedMetadata) Name() string { return m.inner.Name() }

// FetchMovie implements [services.Metadata].
func (m *CachedMetadata) FetchMovie(ctx context.Context, id string) (*services.MovieData, error) {
	cached, err := m.cache.Get(id)
	if err != nil {
		m.logger.Warn("movie cache read failed", "id", id, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	movie, err := m.inner.FetchMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.cache.Put(movie); err != nil {
		m.logger.Warn("movie cache write failed", "id", id, "error", err)
	}
	return movie, nil
}
