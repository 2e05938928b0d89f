package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsession/internal/client/router"
	"github.com/dmitrijs2005/gophsession/internal/client/state"
)

// Users enters the users route; the view fetches the list on entry.
func (a *App) Users(ctx context.Context) error {
	return a.router.Push(ctx, router.PathUsers)
}

// Go navigates to an arbitrary path.
func (a *App) Go(ctx context.Context, path string) error {
	return a.router.Push(ctx, path)
}

func (a *App) Back(ctx context.Context) error {
	_, err := a.router.Back(ctx)
	return err
}

// onNavigate renders the entered view and runs the action it owns. The
// alert of the previous view is dropped on entry.
func (a *App) onNavigate(ctx context.Context, to, from router.Location) {
	a.log.Debug(ctx, "navigated", "to", to.FullPath, "from", from.FullPath)
	a.alerts.Clear()

	switch to.Name {
	case router.NameHome:
		printlnFn("== Home ==")
		if st := a.session.State(); st.Authenticated {
			printlnFn("Logged in as", st.Email)
		}

	case router.NameLogin:
		printlnFn("== Login ==")
		if to.NextURL != "" {
			a.alerts.Warning("Log in to continue to " + to.NextURL)
		}

	case router.NameRegister:
		printlnFn("== Register ==")

	case router.NameLogout:
		printlnFn("== Logout ==")
		if err := a.session.Logout(ctx); err != nil {
			a.log.Warn(ctx, "logout failed", "error", err)
			return
		}
		printlnFn("Logged out.")

	case router.NameUsers:
		printlnFn("== Users ==")
		if err := a.session.List(ctx); err != nil {
			a.log.Debug(ctx, "list users failed", "error", err)
			return
		}
		a.renderUsers()
	}
}

func (a *App) renderUsers() {
	users := a.session.State().Users
	if len(users) == 0 {
		printlnFn("No users.")
		return
	}
	for _, u := range users {
		id := "-"
		if v, ok := u.ID(); ok {
			id = fmt.Sprint(v)
		}
		printlnFn(fmt.Sprintf("%s\t%s", id, u.Email()))
	}
}

func (a *App) renderAlert(al state.Alert) {
	if al.Empty() {
		return
	}
	for _, m := range al.Messages {
		printlnFn(fmt.Sprintf("[%s] %s", al.Type, m))
	}
}
