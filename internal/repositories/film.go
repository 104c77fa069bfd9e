package repositories

import (
	"strings"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/store"
)

// FilmRepository persists [models.Film] records in the films line file.
type FilmRepository struct {
	store *store.Store
	path  string
}

// NewFilmRepository creates a FilmRepository over the given file path.
func NewFilmRepository(s *store.Store, path string) *FilmRepository {
	return &FilmRepository{store: s, path: path}
}

func (r *FilmRepository) load() []models.Film {
	return loadAll(r.store, r.path, models.FilmFromLine)
}

func (r *FilmRepository) save(films []models.Film) {
	saveAll(r.store, r.path, films, models.Film.FileLine)
}

// Add appends the film unless a record with the same id already exists,
// in which case it is a silent no-op.
func (r *FilmRepository) Add(film models.Film) {
	films := r.load()
	for _, f := range films {
		if f.ID == film.ID {
			return
		}
	}
	films = append(films, film)
	r.save(films)
}

// Delete removes the film at the given position in the stored order.
// The index is only meaningful against the collection as last loaded by
// the caller; out-of-range indexes are ignored.
func (r *FilmRepository) Delete(index int) {
	films := r.load()
	if index < 0 || index >= len(films) {
		return
	}
	films = append(films[:index], films[index+1:]...)
	r.save(films)
}

// DeleteByID removes the film with the given id, reporting whether a
// record was removed. Identity-based alternative to [FilmRepository.Delete].
func (r *FilmRepository) DeleteByID(id string) bool {
	films := r.load()
	kept := films[:0]
	removed := false
	for _, f := range films {
		if f.ID == id {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	if removed {
		r.save(kept)
	}
	return removed
}

// Get returns the film at the given position, or false when out of range.
func (r *FilmRepository) Get(index int) (models.Film, bool) {
	films := r.load()
	if index < 0 || index >= len(films) {
		return models.Film{}, false
	}
	return films[index], true
}

// GetByID returns the first film with the given id.
func (r *FilmRepository) GetByID(id string) (models.Film, bool) {
	for _, f := range r.load() {
		if f.ID == id {
			return f, true
		}
	}
	return models.Film{}, false
}

// All returns every stored film in file order.
func (r *FilmRepository) All() []models.Film {
	return r.load()
}

// Visible returns every film not hidden by an admin.
func (r *FilmRepository) Visible() []models.Film {
	var films []models.Film
	for _, f := range r.load() {
		if f.Visible {
			films = append(films, f)
		}
	}
	return films
}

// SearchByTitle returns films whose title contains the query,
// case-insensitively.
func (r *FilmRepository) SearchByTitle(title string) []models.Film {
	query := strings.ToLower(title)
	var results []models.Film
	for _, f := range r.load() {
		if strings.Contains(strings.ToLower(f.Title), query) {
			results = append(results, f)
		}
	}
	return results
}

// SetVisible soft-hides or re-shows the film with the given id,
// reporting whether a record was updated.
func (r *FilmRepository) SetVisible(id string, visible bool) bool {
	films := r.load()
	for i := range films {
		if films[i].ID == id {
			films[i].Visible = visible
			r.save(films)
			return true
		}
	}
	return false
}

// Count returns the number of stored films.
func (r *FilmRepository) Count() int {
	return len(r.load())
}
