package service

import "errors"

// Domain errors returned by the services. The HTTP layer maps each of them
// to a status code; anything else is an internal error.
var (
	// ErrValidation wraps the validator error describing the bad field.
	ErrValidation = errors.New("validation failed")

	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrDuplicateEntry = errors.New("entry is already on the list")

	// ErrInvalidCredentials is returned for an unknown email, a wrong
	// password and a malformed login request alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidToken  = errors.New("token is invalid or expired")
	ErrUserNotFound  = errors.New("user no longer exists")
	ErrEntryNotFound = errors.New("entry is not on the list")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
