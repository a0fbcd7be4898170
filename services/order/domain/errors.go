package domain

import "errors"

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist in tenant scope.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrder indicates the order violates domain constraints.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrEmptyPatch indicates an update request that changes nothing.
	ErrEmptyPatch = errors.New("update contains no fields")
)
