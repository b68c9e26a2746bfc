package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the failure classes the front-end distinguishes.
var (
	// ErrInvalidToken means the backend rejected a bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMalformedReply means the backend answered with a body that is not JSON.
	ErrMalformedReply = errors.New("malformed backend reply")

	// ErrMissingCredentials means a login was submitted without username or password.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrMissingEmail means a password reset was submitted without an email.
	ErrMissingEmail = errors.New("email is required")

	// ErrBusy means a submission is already in flight for the same browser.
	ErrBusy = errors.New("a request is already in progress")
)
