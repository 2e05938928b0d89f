package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Body is a decoded API response: exactly one of the two arms is meaningful.
// Success is nil when a 2xx response had an empty body.
type Body struct {
	Success json.RawMessage
	Failure *ErrorBody
}

// ErrorBody is the error shape the API uses for non-2xx responses.
type ErrorBody struct {
	Message  string
	Messages []string
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// statusText returns the reason phrase of resp ("Unauthorized" for
// "401 Unauthorized").
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func readBody(resp *http.Response) (Body, error) {
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return Body{}, fmt.Errorf("read response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return Body{Failure: decodeErrorBody(text)}, nil
	}

	if len(bytes.TrimSpace(text)) == 0 {
		return Body{}, nil
	}
	if !json.Valid(text) {
		return Body{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	return Body{Success: json.RawMessage(text)}, nil
}

// decodeErrorBody extracts "message"/"messages" when they have the expected
// types. Anything else (non-JSON, arrays, wrong field types) yields an empty
// ErrorBody so the caller falls back to the status text.
func decodeErrorBody(text []byte) *ErrorBody {
	eb := &ErrorBody{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(text, &fields); err != nil {
		return eb
	}

	var messages []string
	if raw, ok := fields["messages"]; ok && json.Unmarshal(raw, &messages) == nil {
		eb.Messages = messages
	}
	var message string
	if raw, ok := fields["message"]; ok && json.Unmarshal(raw, &message) == nil {
		eb.Message = message
	}
	return eb
}

// decodeSuccess unmarshals a success payload into dst; an empty payload
// leaves dst at its zero value.
func decodeSuccess(raw json.RawMessage, dst any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
