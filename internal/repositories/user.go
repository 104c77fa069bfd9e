package repositories

import (
	"strings"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/store"
)

// UserRepository persists [models.User] records in the users line file.
type UserRepository struct {
	store *store.Store
	path  string
}

// NewUserRepository creates a UserRepository over the given file path.
func NewUserRepository(s *store.Store, path string) *UserRepository {
	return &UserRepository{store: s, path: path}
}

func (r *UserRepository) load() []models.User {
	return loadAll(r.store, r.path, models.UserFromLine)
}

func (r *UserRepository) save(users []models.User) {
	saveAll(r.store, r.path, users, models.User.FileLine)
}

// Add appends the user unconditionally. Email uniqueness is enforced at
// the registration boundary, not here.
func (r *UserRepository) Add(user models.User) {
	users := r.load()
	users = append(users, user)
	r.save(users)
}

// Update replaces the user at the given position in the stored order.
// Out-of-range indexes are ignored.
func (r *UserRepository) Update(index int, user models.User) {
	users := r.load()
	if index < 0 || index >= len(users) {
		return
	}
	users[index] = user
	r.save(users)
}

// UpdateByEmail replaces every record whose email matches user.Email,
// reporting whether anything was replaced. Identity-based alternative to
// [UserRepository.Update].
func (r *UserRepository) UpdateByEmail(user models.User) bool {
	users := r.load()
	updated := false
	for i := range users {
		if users[i].Email == user.Email {
			users[i] = user
			updated = true
		}
	}
	if updated {
		r.save(users)
	}
	return updated
}

// Delete removes the user at the given position in the stored order.
// Out-of-range indexes are ignored.
func (r *UserRepository) Delete(index int) {
	users := r.load()
	if index < 0 || index >= len(users) {
		return
	}
	users = append(users[:index], users[index+1:]...)
	r.save(users)
}

// Get returns the user at the given position, or false when out of range.
func (r *UserRepository) Get(index int) (models.User, bool) {
	users := r.load()
	if index < 0 || index >= len(users) {
		return models.User{}, false
	}
	return users[index], true
}

// All returns every stored user in file order.
func (r *UserRepository) All() []models.User {
	return r.load()
}

// FindByUsername returns the first user whose display name matches,
// case-insensitively.
func (r *UserRepository) FindByUsername(username string) (models.User, bool) {
	for _, u := range r.load() {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}

// PremiumUsers returns every user with a premium account.
func (r *UserRepository) PremiumUsers() []models.User {
	var results []models.User
	for _, u := range r.load() {
		if u.Premium {
			results = append(results, u)
		}
	}
	return results
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	return len(r.load())
}

// PremiumCount returns the number of premium users.
func (r *UserRepository) PremiumCount() int {
	return len(r.PremiumUsers())
}
