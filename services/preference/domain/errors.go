package domain

import "errors"

// Sentinel errors for the preference domain. Use errors.Is() to check these.
var (
	// ErrEmptyPatch indicates an update request that changes nothing.
	ErrEmptyPatch = errors.New("update contains no fields")

	// ErrInvalidPreferences indicates the preferences violate domain constraints.
	ErrInvalidPreferences = errors.New("invalid preferences")
)
