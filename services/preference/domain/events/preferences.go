package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicPreferencesUpdated is the watermill topic for preference changes.
const TopicPreferencesUpdated = "preference.updated"

// PreferencesUpdatedEvent is published after a user's preferences change,
// carrying the full post-update state.
type PreferencesUpdatedEvent struct {
	EventID            uuid.UUID `json:"event_id"`
	Version            int       `json:"version"`
	UserID             uuid.UUID `json:"user_id"`
	DarkMode           bool      `json:"dark_mode"`
	Currency           string    `json:"currency"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	OccurredAt         time.Time `json:"occurred_at"`
}
