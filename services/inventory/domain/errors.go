package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist in tenant scope.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUAlreadyExists indicates another product in the same tenant holds this SKU.
	ErrSKUAlreadyExists = errors.New("sku already exists")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrEmptyPatch indicates an update request that changes nothing.
	ErrEmptyPatch = errors.New("update contains no fields")
)
