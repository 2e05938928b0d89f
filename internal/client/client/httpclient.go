package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophsession/internal/client/models"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	newRequestID func() string
}

type Option func(*HTTPClient)

// WithRequestIDFunc replaces the uuid generator used for X-Request-ID.
func WithRequestIDFunc(fn func() string) Option {
	return func(h *HTTPClient) { h.newRequestID = fn }
}

// NewHTTPClient builds a client for the API rooted at baseURL.
// No timeout is set; callers bound requests through the context.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         http.DefaultClient,
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.Registration) (models.UserRecord, error) {
	raw, err := c.do(ctx, http.MethodPost, "/register", req, nil)
	if err != nil {
		return nil, err
	}

	rec := models.UserRecord{}
	if err := decodeSuccess(raw, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = models.UserRecord{}
	}
	return rec, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/login", creds, nil)
	if err != nil {
		return models.LoginResult{}, err
	}

	var res models.LoginResult
	if err := decodeSuccess(raw, &res); err != nil {
		return models.LoginResult{}, err
	}
	return res, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, auth http.Header) ([]models.UserRecord, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users", nil, auth)
	if err != nil {
		return nil, err
	}

	users := []models.UserRecord{}
	if err := decodeSuccess(raw, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

// do sends one request and applies the shared response handling: 2xx yields
// the raw success payload, anything else an *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, header http.Header) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, c.newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	b, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if b.Failure != nil {
		return nil, newAPIError(resp.StatusCode, statusText(resp), *b.Failure)
	}
	return b.Success, nil
}
