// Package authheader derives Authorization headers from the token store.
package authheader

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
)

const bearerPrefix = "Bearer "

type Builder struct {
	store *tokenstore.Store
}

func New(store *tokenstore.Store) *Builder {
	return &Builder{store: store}
}

// Build returns an Authorization header for the token carried by the stored
// user record, or an empty header when there is no record or no token.
func (b *Builder) Build(ctx context.Context) (http.Header, error) {
	var user models.UserRecord
	if _, err := b.store.Get(ctx, tokenstore.KeyUser, &user); err != nil {
		return nil, err
	}

	h := http.Header{}
	if tok := user.Token(); tok != "" {
		h.Set("Authorization", bearerPrefix+tok)
	}
	return h, nil
}

// ReadToken returns the token stored under key, or "" when it is absent or
// malformed. An empty result is not an error so callers can build headers
// unconditionally.
func (b *Builder) ReadToken(ctx context.Context, key string) (string, error) {
	return b.store.GetString(ctx, key)
}

// Bearer returns an Authorization header for the token stored under key.
// The header is always present; its token part is empty when nothing is
// stored.
func (b *Builder) Bearer(ctx context.Context, key string) (http.Header, error) {
	tok, err := b.ReadToken(ctx, key)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set("Authorization", bearerPrefix+tok)
	return h, nil
}
