// ABOUTME: Profile/stats service: the single-row stats record and the
// ABOUTME: append-only bodyweight log built on top of it.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/progress"
	"github.com/harperreed/prvault/internal/storage"
)

// DefaultBodyweightLimit is how many recent entries the dashboard shows.
const DefaultBodyweightLimit = 12

// StatsService reads and writes the per-user stats record and bodyweight
// log entries.
type StatsService struct {
	store *storage.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewStatsService creates a StatsService over the given store.
func NewStatsService(store *storage.Store, log zerolog.Logger) *StatsService {
	return &StatsService{store: store, log: log, now: time.Now}
}

// Load returns the user's stats row, or zero-value defaults when no row
// exists. Absence is not an error.
func (s *StatsService) Load(ctx context.Context, userID string) (*models.UserStats, error) {
	stats := models.EmptyStats(userID)
	err := s.store.FetchFirst(ctx, func(r storage.Row) error {
		var name, preferences sql.NullString
		var bodyweight, bench, squat, deadlift sql.NullFloat64
		if err := r.Scan(&name, &bodyweight, &bench, &squat, &deadlift, &preferences); err != nil {
			return err
		}
		stats.Name = name.String
		stats.Bodyweight = bodyweight.Float64
		stats.Bench = bench.Float64
		stats.Squat = squat.Float64
		stats.Deadlift = deadlift.Float64
		if preferences.Valid && preferences.String != "" {
			stats.Preferences = preferences.String
		}
		return nil
	}, "SELECT name, bodyweight, bench, squat, deadlift, preferences FROM user_stats WHERE user_id = ?", userID)
	if err != nil && !errors.Is(err, storage.ErrNoRows) {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// Save replaces the whole stats row. Callers supply the complete record
// merged with their changes; partial updates are not supported. A
// positive bodyweight also appends one dated log entry in the same
// transaction.
func (s *StatsService) Save(ctx context.Context, userID string, stats *models.UserStats) error {
	if userID == "" {
		return ErrInvalidInput
	}
	if stats.Bodyweight < 0 || stats.Bench < 0 || stats.Squat < 0 || stats.Deadlift < 0 {
		return fmt.Errorf("%w: stat values must not be negative", ErrInvalidInput)
	}

	preferences := stats.Preferences
	if preferences == "" {
		preferences = "{}"
	}

	err := s.store.WithTx(ctx, func(tx *storage.Tx) error {
		if err := tx.Execute(ctx,
			"INSERT OR REPLACE INTO user_stats (user_id, name, bodyweight, bench, squat, deadlift, preferences) VALUES (?, ?, ?, ?, ?, ?, ?)",
			userID, stats.Name, stats.Bodyweight, stats.Bench, stats.Squat, stats.Deadlift, preferences); err != nil {
			return err
		}
		if stats.Bodyweight > 0 {
			entry := models.NewBodyweightLog(userID, progress.DateKey(s.now()), stats.Bodyweight)
			return tx.Execute(ctx,
				"INSERT INTO bodyweight_logs (id, user_id, ts, weight) VALUES (?, ?, ?, ?)",
				entry.ID, entry.UserID, entry.Date, entry.Weight)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("stats save failed")
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// RecentBodyweights lists log entries newest first. A limit of zero or
// less uses DefaultBodyweightLimit.
func (s *StatsService) RecentBodyweights(ctx context.Context, userID string, limit int) ([]*models.BodyweightLog, error) {
	if limit <= 0 {
		limit = DefaultBodyweightLimit
	}

	var logs []*models.BodyweightLog
	err := s.store.FetchAll(ctx, func(r storage.Row) error {
		var entry models.BodyweightLog
		var w sql.NullFloat64
		if err := r.Scan(&entry.ID, &entry.UserID, &entry.Date, &w); err != nil {
			return err
		}
		entry.Weight = w.Float64
		logs = append(logs, &entry)
		return nil
	}, "SELECT id, user_id, ts, weight FROM bodyweight_logs WHERE user_id = ? ORDER BY ts DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent bodyweights: %w", err)
	}
	return logs, nil
}
