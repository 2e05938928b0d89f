// Package tokeninfo reads the claims of a stored access token for display.
//
// The client holds no signing key, so tokens are parsed without signature
// verification. Nothing here is used for authorization decisions.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims are the registered claims plus the user id some APIs add.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
}

// Info is the displayable summary of a token.
type Info struct {
	Subject   string
	UserID    string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Parse decodes tok's claims without verifying its signature.
func Parse(tok string) (Info, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	info := Info{
		Subject: claims.Subject,
		UserID:  claims.UserID,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry before now. Tokens
// without an exp claim never expire.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Remaining is the time left until expiry, zero when expired or unknown.
func (i Info) Remaining(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || !now.Before(i.ExpiresAt) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}
