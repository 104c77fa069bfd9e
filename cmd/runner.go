package main

import (
	"fmt"
	"io"
	"os"

	"github.com/anaphygon/filmdex/internal/auth"
	"github.com/anaphygon/filmdex/internal/repositories"
	"github.com/anaphygon/filmdex/internal/services"
	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/anaphygon/filmdex/internal/store"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	logger    *log.Logger
	output    io.Writer
	store     *store.Store
	paths     store.Paths
	films     *repositories.FilmRepository
	users     *repositories.UserRepository
	playlists *repositories.PlaylistRepository
	session   *auth.Service
	metadata  services.Metadata
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Logger   *log.Logger
	Output   io.Writer
	Metadata services.Metadata
}

// NewRunner creates a new Runner with the provided configuration.
// The store, repositories and auth service are derived from the
// configured data directory.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	s := store.New(opts.Logger)
	paths := store.NewPaths(opts.Config.Data.Directory)

	return &Runner{
		config:    opts.Config,
		logger:    opts.Logger,
		output:    opts.Output,
		store:     s,
		paths:     paths,
		films:     repositories.NewFilmRepository(s, paths.Films()),
		users:     repositories.NewUserRepository(s, paths.Users()),
		playlists: repositories.NewPlaylistRepository(s, paths.Playlists()),
		session:   auth.NewService(s, paths.Users(), opts.Logger),
		metadata:  opts.Metadata,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, filmCommand, playlistCommand, userCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
