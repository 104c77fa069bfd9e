package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/urfave/cli/v3"
)

var filmHeaders = []string{"ID", "Title", "Director", "Genre", "Year", "Visibility"}

// FilmList prints the catalog as a table. Hidden films are included
// only with --all.
func (r *Runner) FilmList(ctx context.Context, cmd *cli.Command) error {
	var films []models.Film
	if cmd.Bool("all") {
		films = r.films.All()
	} else {
		films = r.films.Visible()
	}

	if len(films) == 0 {
		r.writePlain("No films in the catalog\n")
		return nil
	}

	rows := make([][]string, 0, len(films))
	for _, film := range films {
		rows = append(rows, film.TableRow())
	}
	r.writePlain("%s\n", renderTable(filmHeaders, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}))
	r.writePlain("%d film(s)\n", len(films))
	return nil
}

// FilmSearch prints films whose title contains the query.
func (r *Runner) FilmSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if shared.IsEmpty(query) {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	results := r.films.SearchByTitle(query)
	if len(results) == 0 {
		r.writePlain("No films matching %q\n", query)
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, film := range results {
		rows = append(rows, film.TableRow())
	}
	r.writePlain("%s\n", renderTable(filmHeaders, rows, nil))
	return nil
}

// FilmGet prints one film's full record.
func (r *Runner) FilmGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	film, ok := r.films.GetByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrFilmNotFound, id)
	}

	r.writePlain("%s (%d)\n", film.Title, film.Year)
	r.writePlain("Director: %s\n", film.Director)
	r.writePlain("Genre:    %s\n", film.Genre)
	if film.PosterPath != "" {
		r.writePlain("Poster:   %s\n", film.PosterPath)
	}
	if !film.Visible {
		r.writePlain("Hidden from the public catalog\n")
	}
	r.writePlain("\n%s\n", film.Synopsis)
	return nil
}

// FilmAdd adds a hand-entered film. The add is a silent no-op when the
// id is already in the catalog, matching the storage contract, so the
// command checks first to report the conflict.
func (r *Runner) FilmAdd(ctx context.Context, cmd *cli.Command) error {
	yearArg := cmd.String("year")
	if !shared.IsValidYear(yearArg) {
		return fmt.Errorf("%w: year must be between 1900 and 2100", shared.ErrInvalidArgument)
	}
	year, _ := strconv.Atoi(yearArg)

	id := cmd.String("id")
	if id == "" {
		id = shared.GenerateID()
	}

	if _, exists := r.films.GetByID(id); exists {
		return fmt.Errorf("%w: %s", shared.ErrFilmExists, id)
	}

	film := models.NewFilm(id, cmd.String("title"), cmd.String("director"),
		cmd.String("genre"), year, cmd.String("synopsis"), cmd.String("poster"))
	r.films.Add(film)

	r.logger.Info("film added", "id", id, "title", film.Title)
	r.writePlain("✓ Added %s (id %s)\n", film.Title, id)
	return nil
}

// FilmFetch imports a film from TMDB.
func (r *Runner) FilmFetch(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if !shared.IsValidTMDBID(id) {
		return fmt.Errorf("%w: TMDB ids are numeric", shared.ErrInvalidArgument)
	}
	if r.metadata == nil {
		return fmt.Errorf("%w: metadata service not configured", shared.ErrServiceUnavailable)
	}

	r.logger.Info("fetching movie", "service", r.metadata.Name(), "id", id)
	movie, err := r.metadata.FetchMovie(ctx, id)
	if err != nil {
		return err
	}

	r.writePlain("%s (%d) - %s [%s]\n", movie.Title, movie.Year, movie.Director, movie.Genre)

	if cmd.Bool("dry-run") {
		return nil
	}

	if _, exists := r.films.GetByID(id); exists {
		return fmt.Errorf("%w: %s", shared.ErrFilmExists, id)
	}

	film := models.NewFilm(movie.ID, movie.Title, movie.Director, movie.Genre,
		movie.Year, movie.Synopsis, movie.PosterPath)
	r.films.Add(film)

	r.writePlain("✓ Imported into the catalog\n")
	return nil
}

// FilmHide soft-hides a film.
func (r *Runner) FilmHide(ctx context.Context, cmd *cli.Command) error {
	return r.setFilmVisible(cmd.StringArg("id"), false)
}

// FilmShow re-shows a hidden film.
func (r *Runner) FilmShow(ctx context.Context, cmd *cli.Command) error {
	return r.setFilmVisible(cmd.StringArg("id"), true)
}

func (r *Runner) setFilmVisible(id string, visible bool) error {
	if !r.films.SetVisible(id, visible) {
		return fmt.Errorf("%w: %s", shared.ErrFilmNotFound, id)
	}
	state := "hidden"
	if visible {
		state = "visible"
	}
	r.writePlain("✓ Film %s is now %s\n", id, state)
	return nil
}

// FilmRemove hard-deletes a film record.
func (r *Runner) FilmRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if !r.films.DeleteByID(id) {
		return fmt.Errorf("%w: %s", shared.ErrFilmNotFound, id)
	}

	r.logger.Info("film removed", "id", id)
	r.writePlain("✓ Removed film %s\n", id)
	return nil
}
