package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/anaphygon/filmdex/internal/formatter"
	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/urfave/cli/v3"
)

var playlistHeaders = []string{"Name", "Owner", "Visibility", "Films", "Film IDs"}

// PlaylistList prints playlists, optionally filtered by owner.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	var playlists []models.Playlist
	if owner := cmd.String("owner"); owner != "" {
		playlists = r.playlists.ByOwner(owner)
	} else {
		playlists = r.playlists.All()
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists\n")
		return nil
	}

	rows := make([][]string, 0, len(playlists))
	for _, playlist := range playlists {
		rows = append(rows, playlist.TableRow())
	}
	r.writePlain("%s\n", renderTable(playlistHeaders, rows, nil))
	return nil
}

// PlaylistCreate adds a new playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	owner := cmd.String("owner")
	if shared.IsEmpty(name) {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}
	if !shared.IsValidEmail(owner) {
		return fmt.Errorf("%w: owner email %q", shared.ErrInvalidArgument, owner)
	}

	// One (name, owner) playlist from the application's perspective.
	if _, exists := r.playlists.Get(name, owner); exists {
		return fmt.Errorf("%w: %s already has a playlist named %q", shared.ErrInvalidArgument, owner, name)
	}

	r.playlists.Add(models.NewPlaylist(name, owner, cmd.String("visibility"), nil))
	r.logger.Info("playlist created", "name", name, "owner", owner)
	r.writePlain("✓ Created playlist %q for %s\n", name, owner)
	return nil
}

// PlaylistAddFilm appends a film id to a playlist. The id is not
// required to resolve to a stored film; dangling references are allowed.
func (r *Runner) PlaylistAddFilm(ctx context.Context, cmd *cli.Command) error {
	playlist, ok := r.playlists.Get(cmd.String("name"), cmd.String("owner"))
	if !ok {
		return shared.ErrPlaylistNotFound
	}

	filmID := cmd.String("film")
	playlist.FilmIDs = append(playlist.FilmIDs, filmID)
	r.playlists.Update(playlist)

	if _, exists := r.films.GetByID(filmID); !exists {
		r.logger.Warn("film id does not resolve to a stored film", "id", filmID)
	}
	r.writePlain("✓ Added film %s to %q\n", filmID, playlist.Name)
	return nil
}

// PlaylistRemoveFilm removes every occurrence of a film id from a playlist.
func (r *Runner) PlaylistRemoveFilm(ctx context.Context, cmd *cli.Command) error {
	playlist, ok := r.playlists.Get(cmd.String("name"), cmd.String("owner"))
	if !ok {
		return shared.ErrPlaylistNotFound
	}

	filmID := cmd.String("film")
	kept := playlist.FilmIDs[:0]
	removed := 0
	for _, id := range playlist.FilmIDs {
		if id == filmID {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s not in playlist", shared.ErrFilmNotFound, filmID)
	}

	playlist.FilmIDs = kept
	r.playlists.Update(playlist)
	r.writePlain("✓ Removed %d occurrence(s) of film %s\n", removed, filmID)
	return nil
}

// PlaylistDelete removes a playlist by its (name, owner) identity.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	owner := cmd.String("owner")
	if _, ok := r.playlists.Get(name, owner); !ok {
		return shared.ErrPlaylistNotFound
	}

	r.playlists.Delete(name, owner)
	r.logger.Info("playlist deleted", "name", name, "owner", owner)
	r.writePlain("✓ Deleted playlist %q\n", name)
	return nil
}

// PlaylistExport writes a playlist's resolved films to CSV, Markdown or
// plain text. Dangling film ids are skipped.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	playlist, ok := r.playlists.Get(cmd.String("name"), cmd.String("owner"))
	if !ok {
		return shared.ErrPlaylistNotFound
	}

	export := &formatter.PlaylistExport{Playlist: playlist}
	for _, id := range playlist.FilmIDs {
		if film, ok := r.films.GetByID(id); ok {
			export.Films = append(export.Films, film)
		} else {
			r.logger.Warn("skipping dangling film reference", "id", id)
		}
	}

	format := strings.ToLower(cmd.String("format"))
	var (
		data []byte
		err  error
		ext  string
	)
	switch format {
	case "csv":
		data, err = formatter.ExportToCSV(export)
		ext = "csv"
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(export)
		ext = "md"
	case "text", "txt":
		data, err = formatter.ExportToText(export)
		ext = "txt"
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	output := cmd.String("output")
	if output == "" {
		output = fmt.Sprintf("%s.%s", strings.ReplaceAll(playlist.Name, " ", "_"), ext)
	}
	if err := formatter.SaveToFile(output, data); err != nil {
		return err
	}

	r.writePlain("✓ Exported %d film(s) to %s\n", len(export.Films), output)
	return nil
}
