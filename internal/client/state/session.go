package state

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/dmitrijs2005/gophsession/internal/client/services"
)

// Paths the session navigates to after a successful action.
const (
	PathAfterLogin    = "/"
	PathAfterRegister = "/home"
)

// Navigator moves the application to another route.
type Navigator interface {
	Push(ctx context.Context, path string) error
}

// SessionState is a snapshot of the session. Email is the address of the
// last login or registration attempt; passwords are never kept.
type SessionState struct {
	Loading       bool
	Authenticated bool
	Email         string
	Users         []models.UserRecord
	Record        models.UserRecord
}

// Session runs the session actions and publishes every state change.
// Authenticated always starts false, whatever the token store holds.
type Session struct {
	svc    services.SessionService
	alerts *Alerts
	nav    Navigator

	mu   sync.RWMutex
	st   SessionState
	subs observers[SessionState]
}

func NewSession(svc services.SessionService, alerts *Alerts, nav Navigator) *Session {
	return &Session{
		svc:    svc,
		alerts: alerts,
		nav:    nav,
		st:     SessionState{Users: []models.UserRecord{}, Record: models.UserRecord{}},
	}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.clone()
}

// Subscribe registers fn for every change and returns its unsubscribe func.
func (s *Session) Subscribe(fn func(SessionState)) func() {
	return s.subs.add(fn)
}

func (s *Session) mutate(fn func(st *SessionState)) {
	s.mu.Lock()
	fn(&s.st)
	snap := s.st.clone()
	s.mu.Unlock()
	s.subs.notify(snap)
}

// Login authenticates and, on success, marks the session authenticated and
// navigates to the root route. Failures go to the alert sink.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mutate(func(st *SessionState) {
		st.Loading = true
		st.Email = email
	})

	if _, err := s.svc.Login(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		s.mutate(func(st *SessionState) { st.Loading = false })
		s.alerts.Error(client.Messages(err)...)
		return err
	}

	s.mutate(func(st *SessionState) {
		st.Loading = false
		st.Authenticated = true
	})
	return s.navigate(ctx, PathAfterLogin)
}

// Register creates an account and, on success, keeps the returned record
// and navigates to the home route. Failures go to the alert sink.
func (s *Session) Register(ctx context.Context, email, password, confirmPassword string) error {
	s.mutate(func(st *SessionState) {
		st.Loading = true
		st.Email = email
	})

	rec, err := s.svc.Register(ctx, models.Registration{Email: email, Password: password, ConfirmPassword: confirmPassword})
	if err != nil {
		s.mutate(func(st *SessionState) { st.Loading = false })
		s.alerts.Error(client.Messages(err)...)
		return err
	}

	s.mutate(func(st *SessionState) {
		st.Loading = false
		st.Record = rec
	})
	return s.navigate(ctx, PathAfterRegister)
}

// List replaces the users with the API's list; on failure the list is
// emptied and the error goes to the alert sink.
func (s *Session) List(ctx context.Context) error {
	s.mutate(func(st *SessionState) { st.Loading = true })

	users, err := s.svc.List(ctx)
	if err != nil {
		s.mutate(func(st *SessionState) {
			st.Loading = false
			st.Users = []models.UserRecord{}
		})
		s.alerts.Error(client.Messages(err)...)
		return err
	}

	if users == nil {
		users = []models.UserRecord{}
	}
	s.mutate(func(st *SessionState) {
		st.Loading = false
		st.Users = users
	})
	return nil
}

// Logout clears the stored session. The in-memory session is marked
// unauthenticated even when the store reports an error.
func (s *Session) Logout(ctx context.Context) error {
	s.mutate(func(st *SessionState) { st.Loading = true })

	err := s.svc.Logout(ctx)

	s.mutate(func(st *SessionState) {
		st.Loading = false
		st.Authenticated = false
	})
	if err != nil {
		s.alerts.Error(client.Messages(err)...)
	}
	return err
}

func (s *Session) navigate(ctx context.Context, path string) error {
	if s.nav == nil {
		return nil
	}
	if err := s.nav.Push(ctx, path); err != nil {
		return fmt.Errorf("navigate to %s: %w", path, err)
	}
	return nil
}

// clone copies the users slice and every record map; values nested inside
// a record are shared.
func (st SessionState) clone() SessionState {
	out := st
	out.Record = maps.Clone(st.Record)
	if st.Users != nil {
		out.Users = make([]models.UserRecord, len(st.Users))
		for i, u := range st.Users {
			out.Users[i] = maps.Clone(u)
		}
	}
	return out
}
