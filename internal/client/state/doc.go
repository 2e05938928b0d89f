// Package state holds the client's observable in-memory state: the session
// (loading flag, authenticated flag, users, last registered record) and a
// single-slot alert used as the notification sink for every action.
//
// Both containers are explicit values created by the application and passed
// to whoever renders them; there is no package-level state. Subscribers are
// called synchronously after each change with a copy of the new state.
package state
