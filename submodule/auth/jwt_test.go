package auth

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/stretchr/testify/require"
)

func TestAuthRoundTrip(t *testing.T) {
	dir := t.TempDir()

	ja, err := NewJwtAuth(dir)
	require.NoError(t, err)

	perms := []auth.Permission{"read", "sign"}
	tk, err := ja.AuthNew(context.Background(), perms)
	require.NoError(t, err)

	got, err := ja.AuthVerify(context.Background(), string(tk))
	require.NoError(t, err)
	require.Equal(t, perms, got)
}

func TestAuthSecretPersists(t *testing.T) {
	dir := t.TempDir()

	ja1, err := NewJwtAuth(dir)
	require.NoError(t, err)

	tk, err := ja1.AuthNew(context.Background(), []auth.Permission{"admin"})
	require.NoError(t, err)

	// a second instance over the same repo verifies tokens of the first
	ja2, err := NewJwtAuth(dir)
	require.NoError(t, err)

	got, err := ja2.AuthVerify(context.Background(), string(tk))
	require.NoError(t, err)
	require.Equal(t, []auth.Permission{"admin"}, got)
}

func TestAuthVerifyRejectsGarbage(t *testing.T) {
	ja, err := NewJwtAuth(t.TempDir())
	require.NoError(t, err)

	_, err = ja.AuthVerify(context.Background(), "not-a-token")
	require.Error(t, err)
}
