package models

import (
	"strconv"
	"strings"
)

// Delimiter joins record fields on a line; Sentinel replaces the delimiter
// inside free-text fields before encoding.
const (
	Delimiter = "|"
	Sentinel  = "~"
)

// genderPlaceholder is written in place of an empty gender field so the
// field is never serialized as an empty string.
const genderPlaceholder = "N/A"

// User roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a registered account. Email is the unique identity
// (case-sensitive); Username is a display name and is not unique.
type User struct {
	Email    string
	Password string
	Username string
	Role     string
	Gender   string
	Premium  bool
}

// NewUser creates a User with default gender and premium status.
func NewUser(email, password, username, role string) User {
	return User{Email: email, Password: password, Username: username, Role: role}
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// FileLine encodes the user as one storage line.
// Format: email|password|username|role|gender|premium
func (u User) FileLine() string {
	gender := u.Gender
	if gender == "" {
		gender = genderPlaceholder
	}
	return strings.Join([]string{
		u.Email, u.Password, u.Username, u.Role, gender, strconv.FormatBool(u.Premium),
	}, Delimiter)
}

// TableRow returns the user's display columns: email, username, role, account tier.
func (u User) TableRow() []string {
	tier := "Free"
	if u.Premium {
		tier = "Premium"
	}
	return []string{u.Email, u.Username, u.Role, tier}
}

// UserFromLine decodes one storage line into a User.
//
// A line needs at least four fields; shorter lines yield (zero, false).
// Gender and premium are optional trailing fields: gender defaults to
// empty and premium to false when the line predates them.
func UserFromLine(line string) (User, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 4 {
		return User{}, false
	}
	u := User{
		Email:    parts[0],
		Password: parts[1],
		Username: parts[2],
		Role:     parts[3],
	}
	if len(parts) > 4 {
		u.Gender = parts[4]
	}
	if len(parts) > 5 {
		u.Premium = parseBool(parts[5])
	}
	return u, true
}

// Film is a catalog entry. ID is an external (TMDB) identifier treated as
// an opaque string. Visible=false hides the film from regular users
// without removing its record.
type Film struct {
	ID         string
	Title      string
	Director   string
	Genre      string
	Year       int
	Synopsis   string
	PosterPath string
	Visible    bool
}

// NewFilm creates a visible Film.
func NewFilm(id, title, director, genre string, year int, synopsis, posterPath string) Film {
	return Film{
		ID:         id,
		Title:      title,
		Director:   director,
		Genre:      genre,
		Year:       year,
		Synopsis:   synopsis,
		PosterPath: posterPath,
		Visible:    true,
	}
}

// FileLine encodes the film as one storage line.
// Format: id|title|director|genre|year|synopsis|posterPath|visible
// Pipes inside the synopsis are written as tildes.
func (f Film) FileLine() string {
	return strings.Join([]string{
		f.ID,
		f.Title,
		f.Director,
		f.Genre,
		strconv.Itoa(f.Year),
		strings.ReplaceAll(f.Synopsis, Delimiter, Sentinel),
		f.PosterPath,
		strconv.FormatBool(f.Visible),
	}, Delimiter)
}

// TableRow returns the film's display columns.
func (f Film) TableRow() []string {
	visibility := "Visible"
	if !f.Visible {
		visibility = "Hidden"
	}
	return []string{f.ID, f.Title, f.Director, f.Genre, strconv.Itoa(f.Year), visibility}
}

// FilmFromLine decodes one storage line into a Film.
//
// A line needs at least six fields and an integer year; anything else
// yields (zero, false). Lines written before the poster path and
// visibility fields existed decode with an empty poster path and
// Visible=true.
func FilmFromLine(line string) (Film, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 6 {
		return Film{}, false
	}
	year, err := strconv.Atoi(parts[4])
	if err != nil {
		return Film{}, false
	}
	f := Film{
		ID:       parts[0],
		Title:    parts[1],
		Director: parts[2],
		Genre:    parts[3],
		Year:     year,
		Synopsis: strings.ReplaceAll(parts[5], Sentinel, Delimiter),
		Visible:  true,
	}
	if len(parts) >= 7 {
		f.PosterPath = parts[6]
	}
	if len(parts) >= 8 {
		f.Visible = parseBool(parts[7])
	}
	return f, true
}

// Playlist is a named, ordered collection of film ids owned by one user.
// Identity is the (Name, OwnerEmail) pair. FilmIDs may contain duplicates
// and ids that no longer resolve to a stored film.
type Playlist struct {
	Name       string
	OwnerEmail string
	Visibility string
	FilmIDs    []string
}

// NewPlaylist creates a Playlist.
func NewPlaylist(name, ownerEmail, visibility string, filmIDs []string) Playlist {
	return Playlist{Name: name, OwnerEmail: ownerEmail, Visibility: visibility, FilmIDs: filmIDs}
}

// FileLine encodes the playlist as one storage line.
// Format: name|ownerEmail|visibility|filmId1,filmId2,...
// An empty film list serializes as an empty fourth field.
func (p Playlist) FileLine() string {
	return strings.Join([]string{
		p.Name, p.OwnerEmail, p.Visibility, strings.Join(p.FilmIDs, ","),
	}, Delimiter)
}

// TableRow returns the playlist's display columns.
func (p Playlist) TableRow() []string {
	return []string{
		p.Name, p.OwnerEmail, p.Visibility,
		strconv.Itoa(len(p.FilmIDs)), strings.Join(p.FilmIDs, ", "),
	}
}

// PlaylistFromLine decodes one storage line into a Playlist.
//
// A line needs at least three fields; shorter lines yield (zero, false).
// A missing or empty fourth field decodes to an empty film list.
func PlaylistFromLine(line string) (Playlist, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < 3 {
		return Playlist{}, false
	}
	p := Playlist{
		Name:       parts[0],
		OwnerEmail: parts[1],
		Visibility: parts[2],
	}
	if len(parts) >= 4 && parts[3] != "" {
		p.FilmIDs = strings.Split(parts[3], ",")
	}
	return p, true
}

// parseBool matches "true" case-insensitively; everything else is false.
func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}
