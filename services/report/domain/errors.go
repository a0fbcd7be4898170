package domain

import "errors"

// Sentinel errors for the report domain. Use errors.Is() to check these.
var (
	// ErrInvalidDateRange indicates a trailing-day window outside 7/14/30/90.
	ErrInvalidDateRange = errors.New("invalid date range")
)
