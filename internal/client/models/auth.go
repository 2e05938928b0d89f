package models

import "log/slog"

// Credentials are sent to POST /login. They are never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogValue keeps the password out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", c.Email))
}

// Registration is sent to POST /register. It is never persisted.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r Registration) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", r.Email))
}

// LoginResult is the success body of POST /login. Either token may be empty.
type LoginResult struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
