package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/filecoin-project/go-jsonrpc/auth"
	jwt "github.com/gbrlsnchs/jwt/v3"
	"golang.org/x/xerrors"

	"github.com/enzhaowang/go-permit-bank/lib/log"
)

var logger = log.Logger("auth")

const secretFile = "jwt-secret"

type jwtPayload struct {
	Allow []auth.Permission
}

// JwtAuth issues and verifies the bearer tokens guarding the rpc surface.
// The HMAC secret is created once and persisted in the repo dir.
type JwtAuth struct {
	alg *jwt.HMACSHA
}

func NewJwtAuth(repoPath string) (*JwtAuth, error) {
	secret, err := loadOrCreateSecret(filepath.Join(repoPath, secretFile))
	if err != nil {
		return nil, err
	}

	return &JwtAuth{
		alg: jwt.NewHS256(secret),
	}, nil
}

func loadOrCreateSecret(p string) ([]byte, error) {
	raw, err := os.ReadFile(p)
	if err == nil {
		return hex.DecodeString(strings.TrimSpace(string(raw)))
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	secret := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, err
	}

	if err := os.WriteFile(p, []byte(hex.EncodeToString(secret)), 0600); err != nil {
		return nil, xerrors.Errorf("persist jwt secret: %w", err)
	}

	logger.Info("created new jwt secret")
	return secret, nil
}

// AuthNew signs a token carrying the given permissions.
func (a *JwtAuth) AuthNew(ctx context.Context, perms []auth.Permission) ([]byte, error) {
	p := jwtPayload{Allow: perms}
	return jwt.Sign(&p, a.alg)
}

// AuthVerify checks the token signature and returns its permissions.
func (a *JwtAuth) AuthVerify(ctx context.Context, token string) ([]auth.Permission, error) {
	var payload jwtPayload
	if _, err := jwt.Verify([]byte(token), a.alg, &payload); err != nil {
		return nil, xerrors.Errorf("jwt verification failed: %w", err)
	}
	return payload.Allow, nil
}
