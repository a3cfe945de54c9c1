// Package auth wires the session security layer to HTTP: a login endpoint
// that verifies credentials and initializes a session record, and a logout
// endpoint that destroys it. Everything else about users (registration,
// password reset, profile) lives with the external user service; this module
// only needs a credential lookup.
package auth
