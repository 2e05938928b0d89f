package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// UserRecord is a user object as returned by the API. Its shape belongs to
// the server, so all fields are kept; numbers are preserved as json.Number.
type UserRecord map[string]any

func (u *UserRecord) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*u = m
	return nil
}

// ID returns the integer "id" field. ok is false when the field is missing
// or is not an integral number.
func (u UserRecord) ID() (id int64, ok bool) {
	switch v := u["id"].(type) {
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		return n, err == nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// HasPositiveID reports whether the record carries an integer id > 0.
func (u UserRecord) HasPositiveID() bool {
	id, ok := u.ID()
	return ok && id > 0
}

func (u UserRecord) stringField(name string) string {
	s, _ := u[name].(string)
	return s
}

func (u UserRecord) Token() string { return u.stringField("token") }

func (u UserRecord) Email() string { return u.stringField("email") }
