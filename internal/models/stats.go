// ABOUTME: Profile stats and bodyweight log models.
// ABOUTME: Stats are one row per user; bodyweight logs are append-only.
package models

import (
	"github.com/google/uuid"
)

// UserStats is the single-row-per-user profile record: display name,
// current bodyweight, and the three lift PRs (kg). Preferences is an
// opaque JSON blob owned by the UI layer.
type UserStats struct {
	UserID      string
	Name        string
	Bodyweight  float64
	Bench       float64
	Squat       float64
	Deadlift    float64
	Preferences string
}

// EmptyStats returns the zero-value stats row created at registration.
func EmptyStats(userID string) *UserStats {
	return &UserStats{
		UserID:      userID,
		Preferences: "{}",
	}
}

// BodyweightLog is one append-only bodyweight entry. Date is a
// YYYY-MM-DD calendar-day key, not a full timestamp.
type BodyweightLog struct {
	ID     string  `json:"id"`
	UserID string  `json:"user_id"`
	Date   string  `json:"ts"`
	Weight float64 `json:"weight"`
}

// NewBodyweightLog creates a log entry with a generated UUID.
func NewBodyweightLog(userID, date string, weight float64) *BodyweightLog {
	return &BodyweightLog{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   date,
		Weight: weight,
	}
}
