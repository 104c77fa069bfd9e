// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view browser over the catalog:
//  1. [FilmListView] : Browse the film catalog (admins also see hidden films)
//  2. [FilmDetailView] : Full record for one film, synopsis included
//  3. [PlaylistListView] : The logged-in user's playlists
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
