package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/zaeon-io/zaeon-core/ent"
	"github.com/zaeon-io/zaeon-core/ent/user"
)

// accountRepo implements AccountRepo using the ent client.
type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) FindIDByEmail(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil
	}

	u, err := r.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query user by email: %w", err)
	}
	return u.ID, nil
}

func (r *accountRepo) Create(ctx context.Context, email, name string) (string, error) {
	u, err := r.client.User.Create().
		SetEmail(strings.TrimSpace(email)).
		SetName(name).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return u.ID, nil
}
