// ABOUTME: Settings service: the per-user theme/accent/notifications row.
// ABOUTME: Defaults are written on first read; saves replace the row whole.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

// SettingsService reads and writes the user_settings row.
type SettingsService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewSettingsService creates a SettingsService over the given store.
func NewSettingsService(store *storage.Store, log zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, log: log}
}

// Load returns the user's settings, inserting and returning defaults on
// the first read.
func (s *SettingsService) Load(ctx context.Context, userID string) (*models.Settings, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	settings := &models.Settings{UserID: userID}
	var notifications int
	err := s.store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&settings.Theme, &settings.Accent, &notifications)
	}, "SELECT theme, accent, notifications FROM user_settings WHERE user_id = ?", userID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			defaults := models.DefaultSettings(userID)
			if err := s.write(ctx, defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}

	settings.Notifications = notifications != 0
	if settings.Theme == "" {
		settings.Theme = models.ThemeDark
	}
	if settings.Accent == "" {
		settings.Accent = models.AccentOriginal
	}
	return settings, nil
}

// Save validates and replaces the whole settings row.
func (s *SettingsService) Save(ctx context.Context, userID string, settings *models.Settings) error {
	if userID == "" {
		return ErrInvalidInput
	}
	if !models.IsValidTheme(string(settings.Theme)) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, settings.Theme)
	}
	if !models.IsValidAccent(string(settings.Accent)) {
		return fmt.Errorf("%w: unknown accent %q", ErrInvalidInput, settings.Accent)
	}

	settings.UserID = userID
	return s.write(ctx, settings)
}

// write performs the atomic insert-or-replace keyed on user_id, so the
// row never transiently disappears the way delete-then-insert would.
func (s *SettingsService) write(ctx context.Context, settings *models.Settings) error {
	notifications := 0
	if settings.Notifications {
		notifications = 1
	}
	err := s.store.Execute(ctx,
		"INSERT OR REPLACE INTO user_settings (user_id, theme, accent, notifications) VALUES (?, ?, ?, ?)",
		settings.UserID, string(settings.Theme), string(settings.Accent), notifications)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", settings.UserID).Msg("settings save failed")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
