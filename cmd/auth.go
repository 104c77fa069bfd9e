package main

import (
	"context"
	"fmt"

	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin checks an email/password pair against the user collection.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.StringArg("email")
	password := cmd.StringArg("password")
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password", shared.ErrMissingArgument)
	}

	user, ok := r.session.Login(email, password)
	if !ok {
		return shared.ErrInvalidCredentials
	}

	r.logger.Info("login successful", "email", user.Email, "role", user.Role)
	r.writePlain("✓ Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

// AuthRegister creates a new USER-role account.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	username := cmd.String("username")

	if !shared.IsValidEmail(email) {
		return fmt.Errorf("%w: email %q", shared.ErrInvalidArgument, email)
	}
	if !shared.IsValidUsername(username) {
		return fmt.Errorf("%w: username must be 3-20 alphanumeric characters", shared.ErrInvalidArgument)
	}
	if shared.IsEmpty(password) {
		return fmt.Errorf("%w: password", shared.ErrMissingArgument)
	}

	if !r.session.Register(email, password, username) {
		return fmt.Errorf("%w: %s", shared.ErrEmailTaken, email)
	}

	r.logger.Info("account registered", "email", email)
	r.writePlain("✓ Account created for %s\n", email)
	return nil
}
