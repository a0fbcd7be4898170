package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/stockflow/backend/services/inventory/domain/models"
)

func TestValidateName(t *testing.T) {
	for _, name := range []string{"OK", "Wireless Keyboard", strings.Repeat("a", 100)} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q): unexpected error: %v", name, err)
		}
	}
	for _, name := range []string{"", "x", "  x  ", strings.Repeat("a", 101)} {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q): expected error, got nil", name)
		}
	}
}

func TestValidateProductForCreation(t *testing.T) {
	valid := func(t *testing.T) *models.Product {
		t.Helper()
		return product(t, "Widget", "SKU-9000", "Tools", "Acme", 20, 10, 99.99)
	}

	if err := ValidateProductForCreation(valid(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateProductForCreation(nil); err == nil {
		t.Fatal("expected error for nil product")
	}

	t.Run("price over cap", func(t *testing.T) {
		p := valid(t)
		p.Price = 1_000_001
		if err := ValidateProductForCreation(p); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("quantity over cap", func(t *testing.T) {
		p := valid(t)
		p.Quantity = 100_001
		if err := ValidateProductForCreation(p); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("stale status", func(t *testing.T) {
		p := valid(t)
		p.Status = models.StatusOutOfStock
		if err := ValidateProductForCreation(p); err == nil {
			t.Fatal("expected error for status not matching quantity")
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		p := valid(t)
		p.UserID = uuid.Nil
		if err := ValidateProductForCreation(p); err == nil {
			t.Fatal("expected error for missing user_id")
		}
	})
}
