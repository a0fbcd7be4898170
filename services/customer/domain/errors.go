package domain

import "errors"

// Sentinel errors for the customer domain. Use errors.Is() to check these.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist in tenant scope.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidCustomer indicates the customer violates domain constraints.
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrEmptyPatch indicates an update request that changes nothing.
	ErrEmptyPatch = errors.New("update contains no fields")
)
