// Package identity resolves the owner of a request to a stable storage key.
//
// Resolution runs a fixed chain: a verified session email is looked up
// against registered accounts first, and only when that yields nothing
// does the caller-supplied owner hint apply. A request that exhausts the
// chain is unresolved and must not touch storage.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/zaeon-io/zaeon-core/internal/store"
)

// EmailHeaderName carries the verified session email, set by the
// authenticating proxy in front of the service.
const EmailHeaderName = "X-Zaeon-Email"

// ErrUnresolved reports that no step of the resolution chain produced
// an owner.
var ErrUnresolved = errors.New("identity: no resolvable owner")

type contextKey int

const emailKey contextKey = iota

// WithEmail stores the verified session email on the context.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext extracts the verified session email, or "".
func EmailFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(emailKey).(string); ok {
		return v
	}
	return ""
}

// Resolver resolves request identities against registered accounts.
type Resolver struct {
	accounts store.AccountRepo
}

// NewResolver creates a Resolver backed by the given account repository.
func NewResolver(accounts store.AccountRepo) *Resolver {
	return &Resolver{accounts: accounts}
}

// Resolve returns the owner ID for a request. email is the verified
// session email ("" when the request is unauthenticated); hint is the
// caller-supplied owner ID ("" when absent).
//
// A session email that matches a registered account always wins, even
// when a hint is present. A session email with no matching account
// falls through to the hint rather than failing: the account may not
// have been provisioned yet.
func (r *Resolver) Resolve(ctx context.Context, email, hint string) (string, error) {
	email = strings.TrimSpace(email)
	if email != "" {
		id, err := r.accounts.FindIDByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		if id != "" {
			return id, nil
		}
	}

	if hint = strings.TrimSpace(hint); hint != "" {
		return hint, nil
	}

	return "", ErrUnresolved
}
