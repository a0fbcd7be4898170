package models

import (
	"strings"
	"testing"
)

func TestNewSKU(t *testing.T) {
	valid := []string{"SKU", "SKU-1042", "abc_123", strings.Repeat("A", 50)}
	for _, s := range valid {
		if _, err := NewSKU(s); err != nil {
			t.Errorf("NewSKU(%q): unexpected error: %v", s, err)
		}
	}

	invalid := []string{"", "ab", strings.Repeat("A", 51), "SKU 1042", "SKU#1", "ské-1"}
	for _, s := range invalid {
		if _, err := NewSKU(s); err == nil {
			t.Errorf("NewSKU(%q): expected error, got nil", s)
		}
	}
}
