// Package localstorage provides the raw key/value backends behind the
// client's token store: a SQLite file (default), Redis, and an in-memory map.
//
// All backends share the Repository contract:
//
//   - Get reports absence with found == false and a nil error.
//   - Set upserts.
//   - Delete removes any number of keys and is idempotent.
//
// Values are opaque bytes; encoding is the caller's concern.
package localstorage
