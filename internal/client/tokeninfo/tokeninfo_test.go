package tokeninfo

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-ours"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestParse_ReadsClaimsWithoutKey(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := exp.Add(-2 * time.Hour)
	tok := sign(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    "api",
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: "u-42",
	})

	info, err := Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if info.Subject != "42" || info.UserID != "u-42" || info.Issuer != "api" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Fatalf("exp mismatch: got %v want %v", info.ExpiresAt, exp)
	}
	if !info.IssuedAt.Equal(iat) {
		t.Fatalf("iat mismatch: got %v want %v", info.IssuedAt, iat)
	}
}

func TestParse_ExpiredTokenStillParses(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(-time.Minute)
	tok := sign(t, Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}})

	info, err := Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !info.Expired(time.Now()) {
		t.Fatalf("expected expired")
	}
	if got := info.Remaining(time.Now()); got != 0 {
		t.Fatalf("remaining: got %v want 0", got)
	}
}

func TestParse_NotAJWT(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "opaque-token", "a.b.c"} {
		if _, err := Parse(tok); !errors.Is(err, ErrNotJWT) {
			t.Fatalf("Parse(%q): expected ErrNotJWT, got %v", tok, err)
		}
	}
}

func TestInfo_NoExpiry(t *testing.T) {
	t.Parallel()

	var info Info
	now := time.Now()
	if info.Expired(now) {
		t.Fatalf("token without exp must not be expired")
	}
	if info.Remaining(now) != 0 {
		t.Fatalf("remaining should be 0 without exp")
	}

	info.ExpiresAt = now.Add(time.Minute)
	if got := info.Remaining(now); got != time.Minute {
		t.Fatalf("remaining: got %v want 1m", got)
	}
}
