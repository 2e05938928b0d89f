package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	header http.Header
	body   []byte
}

func newServer(t *testing.T, status int, body string) (*HTTPClient, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.header = r.Header.Clone()
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/", WithRequestIDFunc(func() string { return "req-1" }))
	require.NoError(t, err)
	return c, got
}

func TestNewHTTPClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:4000")
	require.Error(t, err)

	_, err = NewHTTPClient("://bad")
	require.Error(t, err)
}

func TestLogin_SendsCredentialsAndDecodesTokens(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{"access_token":"A","refresh_token":"R"}`)

	res, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.LoginResult{AccessToken: "A", RefreshToken: "R"}, res)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/login", got.path)
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
	assert.Equal(t, "req-1", got.header.Get(RequestIDHeader))
	assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(got.body))
}

func TestRegister_SendsConfirmPassword(t *testing.T) {
	c, got := newServer(t, http.StatusCreated, `{"id":5,"email":"a@b.c"}`)

	rec, err := c.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "p1", ConfirmPassword: "p1"})
	require.NoError(t, err)
	assert.True(t, rec.HasPositiveID())
	assert.Equal(t, "a@b.c", rec.Email())

	assert.Equal(t, "/register", got.path)
	assert.JSONEq(t, `{"email":"a@b.c","password":"p1","confirm_password":"p1"}`, string(got.body))
}

func TestListUsers_AttachesHeaderAndDecodes(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `[{"id":1,"email":"a"},{"id":2,"email":"b"}]`)

	users, err := c.ListUsers(context.Background(), http.Header{"Authorization": {"Bearer T"}})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b", users[1].Email())

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "Bearer T", got.header.Get("Authorization"))
	assert.Empty(t, got.header.Get("Content-Type"))
	assert.Empty(t, got.body)
}

func TestSuccess_EmptyBodyIsEmptyValue(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, "")
	ctx := context.Background()

	res, err := c.Login(ctx, models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, models.LoginResult{}, res)

	rec, err := c.Register(ctx, models.Registration{})
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Empty(t, rec)

	users, err := c.ListUsers(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSuccess_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(c *HTTPClient) error
	}{
		{"not json", "<html>", func(c *HTTPClient) error {
			_, err := c.Login(context.Background(), models.Credentials{})
			return err
		}},
		{"list is object", `{"users":[]}`, func(c *HTTPClient) error {
			_, err := c.ListUsers(context.Background(), nil)
			return err
		}},
		{"register is array", `[1]`, func(c *HTTPClient) error {
			_, err := c.Register(context.Background(), models.Registration{})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newServer(t, http.StatusOK, tt.body)
			require.ErrorIs(t, tt.call(c), ErrMalformedResponse)
		})
	}
}

func TestFailure_ErrorPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *APIError
	}{
		{
			name:   "messages list",
			status: http.StatusBadRequest,
			body:   `{"messages":["a","b"]}`,
			want:   &APIError{StatusCode: 400, Status: "Bad Request", Messages: []string{"a", "b"}},
		},
		{
			name:   "single message",
			status: http.StatusBadRequest,
			body:   `{"message":"bad"}`,
			want:   &APIError{StatusCode: 400, Status: "Bad Request", Message: "bad"},
		},
		{
			name:   "empty messages falls back to message",
			status: http.StatusConflict,
			body:   `{"messages":[],"message":"taken"}`,
			want:   &APIError{StatusCode: 409, Status: "Conflict", Message: "taken"},
		},
		{
			name:   "empty body uses status text",
			status: http.StatusInternalServerError,
			body:   "",
			want:   &APIError{StatusCode: 500, Status: "Internal Server Error", Message: "Internal Server Error"},
		},
		{
			name:   "non json body uses status text",
			status: http.StatusBadGateway,
			body:   "<html>oops</html>",
			want:   &APIError{StatusCode: 502, Status: "Bad Gateway", Message: "Bad Gateway"},
		},
		{
			name:   "wrong field types use status text",
			status: http.StatusForbidden,
			body:   `{"message":42,"messages":"nope"}`,
			want:   &APIError{StatusCode: 403, Status: "Forbidden", Message: "Forbidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newServer(t, tt.status, tt.body)

			_, err := c.Login(context.Background(), models.Credentials{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			if diff := cmp.Diff(tt.want, apiErr); diff != "" {
				t.Fatalf("APIError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFailure_UnauthorizedMatchesSentinel(t *testing.T) {
	c, _ := newServer(t, http.StatusUnauthorized, `{"message":"token expired"}`)

	_, err := c.ListUsers(context.Background(), nil)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{"token expired"}, Messages(err))

	c, _ = newServer(t, http.StatusForbidden, "")
	_, err = c.ListUsers(context.Background(), nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthorized))
}

func TestTransportError_IsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POST /login")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRequestID_DefaultsToUUID(t *testing.T) {
	var id string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get(RequestIDHeader)
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	_, err = c.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, id, 36)
}
