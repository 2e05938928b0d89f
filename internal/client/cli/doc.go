// Package cli provides the interactive session client.
//
// It wires configuration, the token store, the HTTP API client, the session
// state and the router into a line-oriented REPL. Every command is a
// navigation or a session action: views are printed when the router enters
// a route, and alerts are printed as soon as an action raises one.
//
// Key features:
//   - register / login / logout against the API
//   - users: the authenticated listing, guarded by the stored access token
//   - go / back: free navigation through the route table
//   - status: current route, session flags, stored keys and access token claims
//   - reset: log out and wipe the local store
package cli
