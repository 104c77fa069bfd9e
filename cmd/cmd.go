// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file, data directory and metadata cache",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles account operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Account registration and credential checks",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Verify an email/password pair",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "email"},
					&cli.StringArg{Name: "password"},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Account email (unique)", Required: true},
					&cli.StringFlag{Name: "password", Usage: "Account password", Required: true},
					&cli.StringFlag{Name: "username", Usage: "Display name", Required: true},
				},
				Action: r.AuthRegister,
			},
		},
	}
}

// filmCommand handles catalog operations
func filmCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "film",
		Usage: "Film catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List films in the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "all", Usage: "Include hidden films"},
				},
				Action: r.FilmList,
			},
			{
				Name:  "search",
				Usage: "Search films by title substring",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Action: r.FilmSearch,
			},
			{
				Name:  "get",
				Usage: "Show one film by id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.FilmGet,
			},
			{
				Name:  "add",
				Usage: "Add a film by hand",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Catalog id (generated when omitted)"},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "director", Required: true},
					&cli.StringFlag{Name: "genre", Required: true},
					&cli.StringFlag{Name: "year", Required: true},
					&cli.StringFlag{Name: "synopsis"},
					&cli.StringFlag{Name: "poster", Usage: "Poster path"},
				},
				Action: r.FilmAdd,
			},
			{
				Name:  "fetch",
				Usage: "Import a film from TMDB by movie id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run", Usage: "Fetch and print without adding to the catalog"},
				},
				Action: r.FilmFetch,
			},
			{
				Name:      "hide",
				Usage:     "Hide a film from the public catalog",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.FilmHide,
			},
			{
				Name:      "show",
				Usage:     "Re-show a hidden film",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.FilmShow,
			},
			{
				Name:      "remove",
				Usage:     "Remove a film record permanently",
				Arguments: []cli.Argument{&cli.StringArg{Name: "id"}},
				Action:    r.FilmRemove,
			},
		},
	}
}

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	ownerFlag := &cli.StringFlag{Name: "owner", Usage: "Owner email", Required: true}
	nameFlag := &cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true}

	return &cli.Command{
		Name:  "playlist",
		Usage: "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List playlists",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "owner", Usage: "Only playlists owned by this email"},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "create",
				Usage: "Create a playlist",
				Flags: []cli.Flag{
					nameFlag,
					ownerFlag,
					&cli.StringFlag{Name: "visibility", Value: "Public", Usage: "Public or Private"},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "add-film",
				Usage: "Append a film id to a playlist",
				Flags: []cli.Flag{
					nameFlag,
					ownerFlag,
					&cli.StringFlag{Name: "film", Usage: "Film id", Required: true},
				},
				Action: r.PlaylistAddFilm,
			},
			{
				Name:  "remove-film",
				Usage: "Remove every occurrence of a film id from a playlist",
				Flags: []cli.Flag{
					nameFlag,
					ownerFlag,
					&cli.StringFlag{Name: "film", Usage: "Film id", Required: true},
				},
				Action: r.PlaylistRemoveFilm,
			},
			{
				Name:   "delete",
				Usage:  "Delete a playlist",
				Flags:  []cli.Flag{nameFlag, ownerFlag},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "export",
				Usage: "Export a playlist's films",
				Flags: []cli.Flag{
					nameFlag,
					ownerFlag,
					&cli.StringFlag{Name: "format", Value: "csv", Usage: "csv, markdown or text"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path"},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// userCommand handles account administration
func userCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Account administration",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all accounts",
				Action: r.UserList,
			},
			{
				Name:   "premium",
				Usage:  "List premium accounts",
				Action: r.UserPremium,
			},
			{
				Name:  "set-premium",
				Usage: "Set an account's premium flag",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.BoolFlag{Name: "premium", Value: true},
				},
				Action: r.UserSetPremium,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse the catalog interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Log in before opening the browser"},
			&cli.StringFlag{Name: "password", Usage: "Password for --email"},
		},
		Action: r.TUI,
	}
}
