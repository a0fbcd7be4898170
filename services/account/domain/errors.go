package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists indicates a registration with an email already in use.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials indicates a login with an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidUser indicates the user record violates domain constraints.
	ErrInvalidUser = errors.New("invalid user")
)
