// Package client is the HTTP transport for the session API.
//
// # Overview
//
// Client is the transport-agnostic contract (Register, Login, ListUsers);
// HTTPClient implements it over net/http with JSON bodies.
//
// # Response handling
//
// Every operation reads the body as text. An empty body counts as an empty
// object. A 2xx status returns the decoded payload. Any other status returns
// an *APIError carrying, in order of preference, the body's "messages" list,
// its "message" string, or the HTTP status text.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnauthorized (any 401) and
// ErrMalformedResponse. Messages(err) flattens an error into the lines shown
// to the user. Transport failures are returned wrapped with the method and
// path.
package client
