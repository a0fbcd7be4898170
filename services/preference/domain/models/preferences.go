package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Preferences holds per-user UI and notification settings, keyed by UserID.
type Preferences struct {
	UserID             uuid.UUID
	DarkMode           bool
	Currency           string
	EmailNotifications bool
	PushNotifications  bool
}

// DefaultPreferences are the values materialized on first read.
func DefaultPreferences(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID:             userID,
		DarkMode:           false,
		Currency:           "USD",
		EmailNotifications: true,
		PushNotifications:  false,
	}
}

// PreferencesPatch carries partial-field update semantics.
type PreferencesPatch struct {
	DarkMode           *bool
	Currency           *string
	EmailNotifications *bool
	PushNotifications  *bool
}

// IsZero reports whether the patch carries no changes.
func (p PreferencesPatch) IsZero() bool {
	return p.DarkMode == nil && p.Currency == nil && p.EmailNotifications == nil && p.PushNotifications == nil
}

// Apply mutates prefs with the patch fields.
func (p PreferencesPatch) Apply(prefs *Preferences) error {
	if p.DarkMode != nil {
		prefs.DarkMode = *p.DarkMode
	}
	if p.Currency != nil {
		if *p.Currency == "" {
			return fmt.Errorf("currency is required")
		}
		prefs.Currency = *p.Currency
	}
	if p.EmailNotifications != nil {
		prefs.EmailNotifications = *p.EmailNotifications
	}
	if p.PushNotifications != nil {
		prefs.PushNotifications = *p.PushNotifications
	}
	return nil
}
