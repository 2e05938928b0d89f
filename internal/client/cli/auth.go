package cli

import (
	"context"

	"github.com/dmitrijs2005/gophsession/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register opens the register view, prompts for an email and the password
// twice and runs the register action. The session navigates on success.
func (a *App) Register(ctx context.Context) error {
	if err := a.router.Push(ctx, router.PathRegister); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	if err := a.session.Register(ctx, email, string(password), string(confirm)); err != nil {
		a.log.Debug(ctx, "register failed", "email", email, "error", err)
		return nil
	}

	a.alerts.Success("Registration successful. Please log in.")
	return nil
}

// Login opens the login view, prompts for credentials and runs the login
// action. The session navigates home on success.
func (a *App) Login(ctx context.Context) error {
	if err := a.router.Push(ctx, router.PathLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.log.Debug(ctx, "login failed", "email", email, "error", err)
	}
	return nil
}

// Logout enters the logout route, which drops the stored session.
func (a *App) Logout(ctx context.Context) error {
	return a.router.Push(ctx, router.PathLogout)
}

// Reset logs out and then wipes every key of the local store, including
// keys that do not belong to the session.
func (a *App) Reset(ctx context.Context) error {
	if err := a.router.Push(ctx, router.PathLogout); err != nil {
		return err
	}
	if err := a.store.Reset(ctx); err != nil {
		return err
	}
	a.alerts.Success("Local store wiped.")
	return nil
}
