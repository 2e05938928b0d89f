package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
)

// Client is the transport contract for the session API.
type Client interface {
	Register(ctx context.Context, req models.Registration) (models.UserRecord, error)
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	ListUsers(ctx context.Context, auth http.Header) ([]models.UserRecord, error)
}
