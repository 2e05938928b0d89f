// Package services contains application services for the client.
// This file defines the session service: register, login, logout, and the
// authenticated user listing, plus the token bookkeeping around them.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophsession/internal/client/authheader"
	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophsession/internal/logging"
)

// SessionService defines the session lifecycle operations.
//
// Contract:
//   - Register: create an account; persist the returned record when its id > 0.
//   - Login: authenticate; persist whichever of the two tokens came back.
//   - Logout: drop both tokens and the user record. Makes no network call.
//   - List: fetch users with the stored access token attached.
//
// Any operation answered with 401 logs the session out before returning.
type SessionService interface {
	Register(ctx context.Context, req models.Registration) (models.UserRecord, error)
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	Logout(ctx context.Context) error
	List(ctx context.Context) ([]models.UserRecord, error)
}

type sessionService struct {
	client  client.Client
	store   *tokenstore.Store
	headers *authheader.Builder
	log     logging.Logger
}

// NewSessionService wires the service to an API client and a token store.
func NewSessionService(c client.Client, store *tokenstore.Store, log logging.Logger) SessionService {
	return &sessionService{
		client:  c,
		store:   store,
		headers: authheader.New(store),
		log:     log.With("component", "session"),
	}
}

func (s *sessionService) Register(ctx context.Context, req models.Registration) (models.UserRecord, error) {
	s.log.Debug(ctx, "register started", "request", req)

	rec, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, "register", err)
	}

	if rec.HasPositiveID() {
		if err := s.store.Set(ctx, tokenstore.KeyUser, rec); err != nil {
			return nil, err
		}
	}

	s.log.Info(ctx, "register finished", "email", req.Email, "stored", rec.HasPositiveID())
	return rec, nil
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	s.log.Debug(ctx, "login started", "credentials", creds)

	res, err := s.client.Login(ctx, creds)
	if err != nil {
		return models.LoginResult{}, s.fail(ctx, "login", err)
	}

	if res.AccessToken != "" {
		if err := s.store.Set(ctx, tokenstore.KeyAccessToken, res.AccessToken); err != nil {
			return models.LoginResult{}, err
		}
	}
	if res.RefreshToken != "" {
		if err := s.store.Set(ctx, tokenstore.KeyRefreshToken, res.RefreshToken); err != nil {
			return models.LoginResult{}, err
		}
	}

	s.log.Info(ctx, "login finished", "email", creds.Email,
		"access_token", res.AccessToken != "", "refresh_token", res.RefreshToken != "")
	return res, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "session cleared")
	return nil
}

func (s *sessionService) List(ctx context.Context) ([]models.UserRecord, error) {
	auth, err := s.headers.Bearer(ctx, tokenstore.KeyAccessToken)
	if err != nil {
		return nil, err
	}

	users, err := s.client.ListUsers(ctx, auth)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}

	s.log.Debug(ctx, "list finished", "count", len(users))
	return users, nil
}

// fail applies the shared failure rule: a 401 clears the session before the
// error reaches the caller.
func (s *sessionService) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		s.log.Warn(ctx, "api rejected credentials, logging out", "op", op)
		if lerr := s.Logout(ctx); lerr != nil {
			s.log.Error(ctx, "forced logout failed", "op", op, "error", lerr)
		}
		return err
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		s.log.Info(ctx, op+" rejected", "status", apiErr.StatusCode, "error", apiErr.Error())
	} else {
		s.log.Error(ctx, op+" failed", "error", err)
	}
	return err
}
