package session

import "errors"

var (
	// ErrMissingSecret indicates no signing secret was configured
	ErrMissingSecret = errors.New("session.missing_secret")

	// ErrSecretTooShort indicates the signing secret is below the entropy threshold
	ErrSecretTooShort = errors.New("session.secret_too_short")

	// ErrRecordNotFound indicates no record exists for the token
	ErrRecordNotFound = errors.New("session.record_not_found")

	// ErrStoreUnavailable indicates the record store could not be reached
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrTokenGeneration indicates the secure random source failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidRecord indicates a nil record or one without a token
	ErrInvalidRecord = errors.New("session.invalid_record")
)
