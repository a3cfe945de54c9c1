package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords;
	// the two are indistinguishable to the client on purpose.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrUserNotFound indicates the credential lookup found no user
	ErrUserNotFound = errors.New("auth.user_not_found")
)
