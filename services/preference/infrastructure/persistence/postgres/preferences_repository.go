package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/stockflow/backend/pkg/database"
	"github.com/stockflow/backend/pkg/events"
	prefdomain "github.com/stockflow/backend/services/preference/domain"
	domainevents "github.com/stockflow/backend/services/preference/domain/events"
	"github.com/stockflow/backend/services/preference/domain/models"
)

const preferencesColumns = `user_id, dark_mode, currency, email_notifications, push_notifications`

// PreferencesRepository implements repositories.PreferencesRepository against PostgreSQL.
type PreferencesRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewPreferencesRepository returns a PreferencesRepository backed by the given
// pool and event bus. The bus publishes preference events transactionally (outbox).
func NewPreferencesRepository(db *database.Database, bus *events.EventBus) *PreferencesRepository {
	return &PreferencesRepository{db: db, bus: bus}
}

// GetOrCreate returns the user's preferences, inserting the default row when
// none exists. ON CONFLICT DO NOTHING keeps concurrent first reads safe.
func (r *PreferencesRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	prefs, err := r.get(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query preferences: %w", err)
	}

	defaults := models.DefaultPreferences(userID)
	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO user_preferences (`+preferencesColumns+`)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING`,
		defaults.UserID, defaults.DarkMode, defaults.Currency,
		defaults.EmailNotifications, defaults.PushNotifications,
	)
	if err != nil {
		return nil, fmt.Errorf("insert default preferences: %w", err)
	}

	// Re-read in case a concurrent request won the insert with other values.
	prefs, err = r.get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query preferences after insert: %w", err)
	}
	return prefs, nil
}

// Update materializes the row if needed, then applies the patch under a row lock.
func (r *PreferencesRepository) Update(ctx context.Context, userID uuid.UUID, patch models.PreferencesPatch) (*models.Preferences, error) {
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	var updated *models.Preferences
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+preferencesColumns+`
			FROM user_preferences
			WHERE user_id = $1
			FOR UPDATE`,
			userID,
		)
		current, err := scanPreferences(row)
		if err != nil {
			return fmt.Errorf("query preferences for update: %w", err)
		}

		if err := patch.Apply(current); err != nil {
			return fmt.Errorf("%w: %w", prefdomain.ErrInvalidPreferences, err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE user_preferences
			SET dark_mode = $2, currency = $3, email_notifications = $4, push_notifications = $5
			WHERE user_id = $1`,
			current.UserID, current.DarkMode, current.Currency,
			current.EmailNotifications, current.PushNotifications,
		)
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}

		if r.bus != nil {
			if err := r.publishUpdated(tx, current); err != nil {
				return fmt.Errorf("publish preferences updated: %w", err)
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *PreferencesRepository) publishUpdated(tx *sql.Tx, prefs *models.Preferences) error {
	event := domainevents.PreferencesUpdatedEvent{
		EventID:            uuid.New(),
		Version:            1,
		UserID:             prefs.UserID,
		DarkMode:           prefs.DarkMode,
		Currency:           prefs.Currency,
		EmailNotifications: prefs.EmailNotifications,
		PushNotifications:  prefs.PushNotifications,
		OccurredAt:         time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicPreferencesUpdated, msg)
}

func (r *PreferencesRepository) get(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+preferencesColumns+`
		FROM user_preferences
		WHERE user_id = $1`,
		userID,
	)
	return scanPreferences(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreferences(row rowScanner) (*models.Preferences, error) {
	var p models.Preferences
	err := row.Scan(&p.UserID, &p.DarkMode, &p.Currency, &p.EmailNotifications, &p.PushNotifications)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
