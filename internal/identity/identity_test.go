package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccounts maps emails to account IDs.
type fakeAccounts struct {
	byEmail map[string]string
	err     error
}

func (f *fakeAccounts) FindIDByEmail(_ context.Context, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeAccounts) Create(_ context.Context, email, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func TestResolveSessionAccountWins(t *testing.T) {
	r := NewResolver(&fakeAccounts{byEmail: map[string]string{"maya@example.com": "acct-1"}})

	// Account lookup beats the hint.
	id, err := r.Resolve(context.Background(), "maya@example.com", "hint-2")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", id)
}

func TestResolveUnknownEmailFallsToHint(t *testing.T) {
	r := NewResolver(&fakeAccounts{byEmail: map[string]string{}})

	id, err := r.Resolve(context.Background(), "new@example.com", "guest-7")
	require.NoError(t, err)
	assert.Equal(t, "guest-7", id)
}

func TestResolveHintOnly(t *testing.T) {
	r := NewResolver(&fakeAccounts{byEmail: map[string]string{}})

	id, err := r.Resolve(context.Background(), "", "guest-7")
	require.NoError(t, err)
	assert.Equal(t, "guest-7", id)
}

func TestResolveUnresolved(t *testing.T) {
	r := NewResolver(&fakeAccounts{byEmail: map[string]string{}})

	_, err := r.Resolve(context.Background(), "", "")
	require.ErrorIs(t, err, ErrUnresolved)

	// Whitespace-only inputs resolve the same as empty ones.
	_, err = r.Resolve(context.Background(), "   ", "  ")
	require.ErrorIs(t, err, ErrUnresolved)
}

func TestResolveLookupError(t *testing.T) {
	r := NewResolver(&fakeAccounts{err: errors.New("db down")})

	_, err := r.Resolve(context.Background(), "maya@example.com", "hint")
	require.Error(t, err)
	// Storage errors must not masquerade as unresolved identity.
	assert.NotErrorIs(t, err, ErrUnresolved)
}

func TestEmailContextRoundTrip(t *testing.T) {
	ctx := WithEmail(context.Background(), "maya@example.com")
	assert.Equal(t, "maya@example.com", EmailFromContext(ctx))
	assert.Empty(t, EmailFromContext(context.Background()))
}
