// Package tokenstore persists the session's tokens and user record as JSON
// values in a key/value repository.
//
// A stored value is always a JSON document (a quoted string for tokens, an
// object for the user record). Reads treat a missing key and an undecodable
// value the same way: the value is reported absent and the destination is
// left untouched.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
)

// Storage keys shared with every other client of the same API.
const (
	KeyAccessToken  = "user:access"
	KeyRefreshToken = "user:refresh"
	KeyUser         = "user"
)

// SessionKeys lists every key cleared on logout.
var SessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUser}

type Store struct {
	repo localstorage.Repository
}

func New(repo localstorage.Repository) *Store {
	return &Store{repo: repo}
}

// Set JSON-encodes value and stores it under key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, b)
}

// Get decodes the value stored under key into dst. It returns false when the
// key is absent or its value is not valid JSON for dst; only repository
// failures are returned as errors.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.repo.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, fmt.Errorf("decode %s: destination must be a non-nil pointer", key)
	}

	// decode into a fresh value so a failed decode leaves dst untouched
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return false, nil
	}
	rv.Elem().Set(tmp.Elem())
	return true, nil
}

// GetString reads a string value, returning "" when absent or malformed.
func (s *Store) GetString(ctx context.Context, key string) (string, error) {
	var v string
	if _, err := s.Get(ctx, key, &v); err != nil {
		return "", err
	}
	return v, nil
}

// Has reports whether key holds a decodable value.
func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	var v any
	return s.Get(ctx, key, &v)
}

// Remove deletes the given keys. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, keys ...string) error {
	return s.repo.Delete(ctx, keys...)
}

// Clear removes every session key.
func (s *Store) Clear(ctx context.Context) error {
	return s.Remove(ctx, SessionKeys...)
}

// Keys returns the sorted keys present in the repository, session or not.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	m, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Reset wipes every key the repository holds, not only SessionKeys.
func (s *Store) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *Store) Close() error {
	return s.repo.Close()
}
