package ui

import (
	"fmt"
	"strings"

	"github.com/anaphygon/filmdex/internal/auth"
	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/repositories"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FilmListView ViewState = iota
	FilmDetailView
	PlaylistListView
)

// Model represents the TUI application state.
type Model struct {
	view         ViewState
	films        *repositories.FilmRepository
	playlists    *repositories.PlaylistRepository
	session      *auth.Service
	width        int
	height       int
	filmList     list.Model
	playlistList list.Model
	selectedFilm *models.Film
	err          error
	help         help.Model
	keys         keyMap
}

type catalogLoadedMsg struct {
	films     []models.Film
	playlists []models.Playlist
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(films *repositories.FilmRepository, playlists *repositories.PlaylistRepository, session *auth.Service) *Model {
	filmList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	filmList.Title = "Film Catalog"
	playlistList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "My Playlists"

	return &Model{
		view:         FilmListView,
		films:        films,
		playlists:    playlists,
		session:      session,
		filmList:     filmList,
		playlistList: playlistList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init loads the catalog from disk.
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

// loadCatalog reads the film and playlist collections. Admins see
// hidden films; anonymous sessions see no playlists.
func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		var films []models.Film
		if m.session.IsAdmin() {
			films = m.films.All()
		} else {
			films = m.films.Visible()
		}

		var playlists []models.Playlist
		if user := m.session.CurrentUser(); user != nil {
			playlists = m.playlists.ByOwner(user.Email)
		}

		return catalogLoadedMsg{films: films, playlists: playlists}
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filmList.SetSize(msg.Width-4, msg.Height-8)
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case FilmListView:
			return m.handleFilmListKeys(msg)
		case FilmDetailView:
			return m.handleFilmDetailKeys(msg)
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		}

	case catalogLoadedMsg:
		filmItems := make([]list.Item, len(msg.films))
		for i, film := range msg.films {
			filmItems[i] = filmItem{film: film}
		}
		m.filmList = list.New(filmItems, list.NewDefaultDelegate(), 0, 0)
		m.filmList.Title = "Film Catalog"
		m.filmList.SetSize(m.width-4, m.height-8)

		playlistItems := make([]list.Item, len(msg.playlists))
		for i, playlist := range msg.playlists {
			playlistItems[i] = playlistItem{playlist: playlist}
		}
		m.playlistList = list.New(playlistItems, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "My Playlists"
		m.playlistList.SetSize(m.width-4, m.height-8)
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case FilmListView:
		return m.filmList.View() + "\n" + m.help.View(m.keys)
	case FilmDetailView:
		return m.renderFilmDetail()
	case PlaylistListView:
		return m.playlistList.View() + "\n" + m.help.View(m.keys)
	default:
		return ""
	}
}

func (m *Model) handleFilmListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.view = PlaylistListView
		return m, nil
	case "enter":
		if selected := m.filmList.SelectedItem(); selected != nil {
			if item, ok := selected.(filmItem); ok {
				film := item.film
				m.selectedFilm = &film
				m.view = FilmDetailView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filmList, cmd = m.filmList.Update(msg)
	return m, cmd
}

func (m *Model) handleFilmDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = FilmListView
		m.selectedFilm = nil
	}
	return m, nil
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "esc":
		m.view = FilmListView
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) renderFilmDetail() string {
	film := m.selectedFilm
	if film == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(fmt.Sprintf("%s (%d)", film.Title, film.Year)) + "\n\n")
	b.WriteString(fmt.Sprintf("Director: %s\n", film.Director))
	b.WriteString(fmt.Sprintf("Genre:    %s\n", film.Genre))
	if film.PosterPath != "" {
		b.WriteString(fmt.Sprintf("Poster:   %s\n", film.PosterPath))
	}
	if !film.Visible {
		b.WriteString(styles.warn.Render("Hidden from the public catalog") + "\n")
	}
	b.WriteString("\n" + film.Synopsis + "\n\n")
	b.WriteString(styles.help.Render("esc back • q quit"))
	return b.String()
}
