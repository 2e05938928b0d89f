package client

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized matches any API response with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is returned when a successful response body is not
	// the JSON shape the operation expects.
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx API response. Messages holds the structured
// "messages" list when the server sent one; otherwise Message holds the
// body's "message" field or the HTTP status text.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Messages   []string
}

func newAPIError(code int, status string, body ErrorBody) *APIError {
	e := &APIError{StatusCode: code, Status: status}
	if len(body.Messages) > 0 {
		e.Messages = body.Messages
		return e
	}
	e.Message = body.Message
	if e.Message == "" {
		e.Message = status
	}
	if e.Message == "" {
		e.Message = http.StatusText(code)
	}
	return e
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return e.Message
}

// Is makes errors.Is(err, ErrUnauthorized) true for 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Payload returns the rejection payload: the messages list, or the single
// message as a one-element list.
func (e *APIError) Payload() []string {
	if len(e.Messages) > 0 {
		return append([]string(nil), e.Messages...)
	}
	return []string{e.Message}
}

// Messages flattens err into user-facing lines.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Payload()
	}
	return []string{err.Error()}
}
