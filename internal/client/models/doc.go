// Package models defines the client-side data exchanged with the session
// API: credentials, registration requests, login results, and user records.
package models
