package main

import (
	"context"
	"fmt"

	"github.com/anaphygon/filmdex/internal/models"
	"github.com/anaphygon/filmdex/internal/shared"
	"github.com/urfave/cli/v3"
)

var userHeaders = []string{"Email", "Username", "Role", "Account"}

// UserList prints every registered account.
func (r *Runner) UserList(ctx context.Context, cmd *cli.Command) error {
	users := r.users.All()
	if len(users) == 0 {
		r.writePlain("No accounts\n")
		return nil
	}

	r.writePlain("%s\n", renderTable(userHeaders, userRows(users), nil))
	r.writePlain("%d account(s), %d premium\n", r.users.Count(), r.users.PremiumCount())
	return nil
}

// UserPremium prints premium accounts only.
func (r *Runner) UserPremium(ctx context.Context, cmd *cli.Command) error {
	premium := r.users.PremiumUsers()
	if len(premium) == 0 {
		r.writePlain("No premium accounts\n")
		return nil
	}

	r.writePlain("%s\n", renderTable(userHeaders, userRows(premium), nil))
	return nil
}

// UserSetPremium flips an account's premium flag, matched by email.
func (r *Runner) UserSetPremium(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	premium := cmd.Bool("premium")

	users := r.users.All()
	var target *models.User
	for i := range users {
		if users[i].Email == email {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: %s", shared.ErrUserNotFound, email)
	}

	target.Premium = premium
	r.users.UpdateByEmail(*target)

	r.logger.Info("premium flag updated", "email", email, "premium", premium)
	r.writePlain("✓ %s premium=%v\n", email, premium)
	return nil
}

func userRows(users []models.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, user.TableRow())
	}
	return rows
}
