package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsession/internal/client/tokeninfo"
	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
)

// Status prints the current route, the session flags and what can be read
// from the stored tokens.
func (a *App) Status(ctx context.Context) error {
	loc := a.router.Current()
	st := a.session.State()

	printlnFn("Route:", loc.FullPath)
	printlnFn("Authenticated:", st.Authenticated)
	if st.Email != "" {
		printlnFn("Email:", st.Email)
	}
	if al := a.alerts.Current(); !al.Empty() {
		printlnFn("Alert:", string(al.Type), strings.Join(al.Messages, "; "))
	}

	keys, err := a.store.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		printlnFn("Stored keys: none")
	} else {
		printlnFn("Stored keys:", strings.Join(keys, ", "))
	}

	access, err := a.store.GetString(ctx, tokenstore.KeyAccessToken)
	if err != nil {
		return err
	}
	refresh, err := a.store.Has(ctx, tokenstore.KeyRefreshToken)
	if err != nil {
		return err
	}

	if refresh {
		printlnFn("Refresh token: stored")
	} else {
		printlnFn("Refresh token: none")
	}

	if access == "" {
		printlnFn("Access token: none")
		return nil
	}

	info, err := tokeninfo.Parse(access)
	if err != nil {
		printlnFn("Access token: stored (opaque)")
		return nil
	}

	printlnFn("Access token: stored")
	if info.Subject != "" {
		printlnFn("  subject:", info.Subject)
	}
	if info.UserID != "" {
		printlnFn("  user id:", info.UserID)
	}
	now := a.now()
	switch {
	case info.ExpiresAt.IsZero():
		printlnFn("  expires: never")
	case info.Expired(now):
		printlnFn("  expired at", info.ExpiresAt.Format(time.RFC3339))
	default:
		printlnFn("  expires in", info.Remaining(now).Truncate(time.Second))
	}
	return nil
}
