package repositories

import (
	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/store"
)

// PlaylistRepository persists [models.Playlist] records in the playlists
// line file. Identity is the (name, owner email) pair; the codec layer
// does not prevent duplicates, so identity-based operations act on every
// match.
type PlaylistRepository struct {
	store *store.Store
	path  string
}

// NewPlaylistRepository creates a PlaylistRepository over the given file path.
func NewPlaylistRepository(s *store.Store, path string) *PlaylistRepository {
	return &PlaylistRepository{store: s, path: path}
}

func (r *PlaylistRepository) load() []models.Playlist {
	return loadAll(r.store, r.path, models.PlaylistFromLine)
}

func (r *PlaylistRepository) save(playlists []models.Playlist) {
	saveAll(r.store, r.path, playlists, models.Playlist.FileLine)
}

// Add appends the playlist unconditionally.
func (r *PlaylistRepository) Add(playlist models.Playlist) {
	playlists := r.load()
	playlists = append(playlists, playlist)
	r.save(playlists)
}

// Update replaces every stored playlist matching playlist's
// (name, owner) identity.
func (r *PlaylistRepository) Update(playlist models.Playlist) {
	playlists := r.load()
	for i, p := range playlists {
		if p.Name == playlist.Name && p.OwnerEmail == playlist.OwnerEmail {
			playlists[i] = playlist
		}
	}
	r.save(playlists)
}

// Delete removes every stored playlist matching the (name, owner) identity.
func (r *PlaylistRepository) Delete(name, ownerEmail string) {
	playlists := r.load()
	kept := playlists[:0]
	for _, p := range playlists {
		if p.Name == name && p.OwnerEmail == ownerEmail {
			continue
		}
		kept = append(kept, p)
	}
	r.save(kept)
}

// Get returns the first playlist matching the (name, owner) identity.
func (r *PlaylistRepository) Get(name, ownerEmail string) (models.Playlist, bool) {
	for _, p := range r.load() {
		if p.Name == name && p.OwnerEmail == ownerEmail {
			return p, true
		}
	}
	return models.Playlist{}, false
}

// All returns every stored playlist in file order.
func (r *PlaylistRepository) All() []models.Playlist {
	return r.load()
}

// ByOwner returns every playlist owned by the given email.
func (r *PlaylistRepository) ByOwner(ownerEmail string) []models.Playlist {
	var results []models.Playlist
	for _, p := range r.load() {
		if p.OwnerEmail == ownerEmail {
			results = append(results, p)
		}
	}
	return results
}

// Count returns the number of stored playlists.
func (r *PlaylistRepository) Count() int {
	return len(r.load())
}
