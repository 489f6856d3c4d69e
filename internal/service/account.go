// ABOUTME: Account service: registration, login, and account deletion.
// ABOUTME: Stores a SHA-256 hex digest of the password, never the plaintext.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

// AccountService handles registration and login against the users table.
type AccountService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewAccountService creates an AccountService over the given store.
func NewAccountService(store *storage.Store, log zerolog.Logger) *AccountService {
	return &AccountService{store: store, log: log}
}

// hashPassword computes the fixed digest used for both registration and
// login. Deterministic so login can match username+hash in one query.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Register creates a user plus its empty stats row in one transaction
// and returns the new user id. A taken username fails with
// ErrDuplicateUsername and creates nothing.
func (s *AccountService) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user := models.NewUser(username, hashPassword(password))
	stats := models.EmptyStats(user.ID)

	err := s.store.WithTx(ctx, func(tx *storage.Tx) error {
		if err := tx.Execute(ctx,
			"INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
			user.ID, user.Username, user.PasswordHash, user.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
		return tx.Execute(ctx,
			"INSERT INTO user_stats (user_id, name, bodyweight, bench, squat, deadlift, preferences) VALUES (?, ?, ?, ?, ?, ?, ?)",
			stats.UserID, stats.Name, stats.Bodyweight, stats.Bench, stats.Squat, stats.Deadlift, stats.Preferences)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateUsername
		}
		s.log.Error().Err(err).Str("username", username).Msg("registration failed")
		return "", fmt.Errorf("register: %w", err)
	}

	return user.ID, nil
}

// Login verifies credentials and returns the opaque session identity.
// The error for an unknown username and a wrong password is the same to
// avoid username enumeration.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	var session models.Session
	err := s.store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&session.ID, &session.Username)
	}, "SELECT id, username FROM users WHERE username = ? AND password_hash = ?",
		username, hashPassword(password))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	return &session, nil
}

// Delete removes the account and every row it owns, in one transaction.
func (s *AccountService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidInput
	}

	err := s.store.WithTx(ctx, func(tx *storage.Tx) error {
		statements := []string{
			"DELETE FROM workout_sets WHERE workout_log_id IN (SELECT id FROM workout_logs WHERE user_id = ?)",
			"DELETE FROM workout_logs WHERE user_id = ?",
			"DELETE FROM workouts WHERE user_id = ?",
			"DELETE FROM bodyweight_logs WHERE user_id = ?",
			"DELETE FROM user_stats WHERE user_id = ?",
			"DELETE FROM user_settings WHERE user_id = ?",
			"DELETE FROM users WHERE id = ?",
		}
		for _, stmt := range statements {
			if err := tx.Execute(ctx, stmt, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("account deletion failed")
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
