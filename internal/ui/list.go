package ui

import (
	"fmt"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = filmItem{}
	_ list.Item = playlistItem{}
)

// filmItem wraps [models.Film] to implement [list.Item].
type filmItem struct {
	film models.Film
}

func (i filmItem) FilterValue() string { return i.film.Title }
func (i filmItem) Title() string {
	title := fmt.Sprintf("%s (%d)", i.film.Title, i.film.Year)
	if !i.film.Visible {
		title += " [hidden]"
	}
	return title
}
func (i filmItem) Description() string {
	return fmt.Sprintf("%s • %s", i.film.Director, i.film.Genre)
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%d films • %s", len(i.playlist.FilmIDs), i.playlist.Visibility)
}
