package models

import "fmt"

// SKU is a value object for stock-keeping unit codes.
// Constraints: 3–50 characters, letters/digits/hyphen/underscore only.
type SKU string

const (
	minSKULength = 3
	maxSKULength = 50
)

// NewSKU constructs a valid SKU or returns an error describing the violation.
func NewSKU(s string) (SKU, error) {
	if len(s) < minSKULength || len(s) > maxSKULength {
		return "", fmt.Errorf("sku must be %d-%d characters", minSKULength, maxSKULength)
	}
	for _, r := range s {
		if !isSKURune(r) {
			return "", fmt.Errorf("sku must contain only letters, numbers, hyphens, or underscores")
		}
	}
	return SKU(s), nil
}

func isSKURune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// String returns the underlying string value.
func (s SKU) String() string {
	return string(s)
}
