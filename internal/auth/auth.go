// package auth manages login sessions over the user collection.
//
// A Service holds one current session and is constructed explicitly
// rather than kept as process-global state, so tests (and any future
// multi-session caller) can hold independent instances.
package auth

import (
	"strings"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/store"
	"github.com/charmbracelet/log"
)

// Default administrator account created on first run. Fixed in source,
// not configurable.
const (
	DefaultAdminEmail    = "anaphygon@protonmail.com"
	DefaultAdminPassword = "password"
	defaultAdminUsername = "Admin"
)

// Service performs credential checks against the user collection and
// tracks the currently authenticated user. The session is either
// anonymous (nil) or bound to one user.
type Service struct {
	store   *store.Store
	path    string
	logger  *log.Logger
	current *models.User
}

// NewService creates a Service over the users file at path.
func NewService(s *store.Store, path string, logger *log.Logger) *Service {
	return &Service{store: s, path: path, logger: logger}
}

// Bootstrap appends the default administrator record when no stored line
// carries the default admin email. Safe to run repeatedly.
func (s *Service) Bootstrap() {
	for _, line := range s.store.ReadLines(s.path) {
		if strings.HasPrefix(line, DefaultAdminEmail) {
			return
		}
	}

	admin := models.NewUser(DefaultAdminEmail, DefaultAdminPassword, defaultAdminUsername, models.RoleAdmin)
	s.store.AppendLine(s.path, admin.FileLine())
	s.logger.Info("created default administrator account", "email", DefaultAdminEmail)
}

// Login scans the user collection for an exact, case-sensitive match on
// both email and password. Only a successful login rebinds the session;
// a failed attempt leaves whatever session existed before.
func (s *Service) Login(email, password string) (*models.User, bool) {
	for _, line := range s.store.ReadLines(s.path) {
		user, ok := models.UserFromLine(line)
		if ok && user.Email == email && user.Password == password {
			s.current = &user
			return &user, true
		}
	}
	return nil, false
}

// Logout clears the session unconditionally.
func (s *Service) Logout() {
	s.current = nil
}

// Register appends a new USER-role account, failing when any stored line
// already starts with the requested email plus delimiter.
func (s *Service) Register(email, password, username string) bool {
	prefix := email + models.Delimiter
	for _, line := range s.store.ReadLines(s.path) {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}

	user := models.NewUser(email, password, username, models.RoleUser)
	s.store.AppendLine(s.path, user.FileLine())
	return true
}

// IsLoggedIn reports whether a session is bound.
func (s *Service) IsLoggedIn() bool {
	return s.current != nil
}

// CurrentUser returns the session's user, or nil when anonymous.
func (s *Service) CurrentUser() *models.User {
	return s.current
}

// IsAdmin reports whether the session is bound to an ADMIN user.
func (s *Service) IsAdmin() bool {
	return s.current != nil && s.current.IsAdmin()
}

// AllUsers returns every decodable user record.
func (s *Service) AllUsers() []models.User {
	var users []models.User
	for _, line := range s.store.ReadLines(s.path) {
		if user, ok := models.UserFromLine(line); ok {
			users = append(users, user)
		}
	}
	return users
}

// UpdateUser rewrites the collection, replacing every record whose email
// matches user.Email. The bound session is not refreshed; callers that
// changed the logged-in user must re-login or update their copy.
func (s *Service) UpdateUser(user models.User) {
	lines := s.store.ReadLines(s.path)
	updated := make([]string, 0, len(lines))

	for _, line := range lines {
		if u, ok := models.UserFromLine(line); ok && u.Email == user.Email {
			updated = append(updated, user.FileLine())
		} else {
			updated = append(updated, line)
		}
	}

	s.store.WriteLines(s.path, updated)
}
