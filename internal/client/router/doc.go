// Package router maps paths to the client's views and runs the
// authentication guard before every navigation.
//
// Routes are matched on the path only; the query string is kept in the
// full path and passed through to the resolved Location. A route marked
// Public is always reachable. Any other route requires a stored access
// token; without one the navigation is redirected to the login route with
// the original full path recorded as Location.NextURL.
package router
