package models

import "testing"

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Jane@Example.COM  ", "s3cret-pass", "Jane Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", u.Email)
	}
	if u.Name != "Jane Smith" {
		t.Fatalf("expected name kept, got %q", u.Name)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Fatal("expected password to be hashed")
	}

	if !u.CheckPassword("s3cret-pass") {
		t.Fatal("expected correct password to verify")
	}
	if u.CheckPassword("wrong-pass") {
		t.Fatal("expected wrong password to fail")
	}
}

func TestNewUser_NameFallsBackToMailbox(t *testing.T) {
	u, err := NewUser("jane@example.com", "s3cret-pass", "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "jane" {
		t.Fatalf("expected mailbox-part fallback, got %q", u.Name)
	}
}

func TestNewUser_Rejections(t *testing.T) {
	if _, err := NewUser("", "s3cret-pass", "Jane"); err == nil {
		t.Fatal("expected error for empty email")
	}
	if _, err := NewUser("jane@example.com", "short", "Jane"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestRename(t *testing.T) {
	u, err := NewUser("jane@example.com", "s3cret-pass", "Jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := u.Rename("  Jane S.  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Jane S." {
		t.Fatalf("expected trimmed rename, got %q", u.Name)
	}
	if err := u.Rename("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}
