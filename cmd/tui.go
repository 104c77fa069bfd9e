package main

import (
	"context"
	"fmt"

	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/anaphygon/filmdex/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive catalog browser. Passing --email and
// --password binds a session first, which unhides films for admins and
// populates the playlist view.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	if email != "" {
		user, ok := r.session.Login(email, password)
		if !ok {
			return shared.ErrInvalidCredentials
		}
		r.logger.Info("session bound", "email", user.Email, "role", user.Role)
	}

	model := ui.NewModel(r.films, r.playlists, r.session)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
