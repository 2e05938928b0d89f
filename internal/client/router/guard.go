package router

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
)

// TokenReader is the part of the token store the guard needs.
type TokenReader interface {
	GetString(ctx context.Context, key string) (string, error)
}

// Guard decides whether a navigation may proceed.
type Guard struct {
	tokens    TokenReader
	loginPath string
}

func NewGuard(tokens TokenReader) *Guard {
	return &Guard{tokens: tokens, loginPath: PathLogin}
}

// Check returns "" when navigation to route may proceed, or the path to
// redirect to otherwise. A missing, undecodable or empty access token
// blocks private routes, so a stored "" or null blocks too. Token expiry is
// not checked.
func (g *Guard) Check(ctx context.Context, route Route) (string, error) {
	if route.Public {
		return "", nil
	}
	tok, err := g.tokens.GetString(ctx, tokenstore.KeyAccessToken)
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	if tok == "" {
		return g.loginPath, nil
	}
	return "", nil
}
