// ABOUTME: Tests for streak and daily-progress calculations.
// ABOUTME: Covers consecutive runs, gaps, duplicates, and the day cap.
package progress

import (
	"testing"
	"time"
)

var testToday = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func keysFor(offsets ...int) []string {
	var keys []string
	for _, d := range offsets {
		keys = append(keys, DateKey(testToday.AddDate(0, 0, -d)))
	}
	return keys
}

func TestStreakConsecutiveDays(t *testing.T) {
	if got := Streak(keysFor(0, 1, 2), testToday); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	if got := Streak(keysFor(0, 2), testToday); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestStreakNoLogs(t *testing.T) {
	if got := Streak(nil, testToday); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestStreakZeroWithoutToday(t *testing.T) {
	if got := Streak(keysFor(1, 2, 3), testToday); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func TestStreakDedupesSameDay(t *testing.T) {
	// Multiple saves on one day count as a single day.
	if got := Streak(keysFor(0, 0, 0, 1), testToday); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestStreakCapped(t *testing.T) {
	var offsets []int
	for d := 0; d < 500; d++ {
		offsets = append(offsets, d)
	}
	got := Streak(keysFor(offsets...), testToday)
	if got > maxStreakDays+1 {
		t.Errorf("streak = %d, exceeds cap", got)
	}
}

func TestDaily(t *testing.T) {
	if got := Daily(keysFor(0, 3), testToday); got != 100 {
		t.Errorf("daily = %d, want 100", got)
	}
	if got := Daily(keysFor(1, 2), testToday); got != 0 {
		t.Errorf("daily = %d, want 0", got)
	}
	if got := Daily(nil, testToday); got != 0 {
		t.Errorf("daily with no logs = %d, want 0", got)
	}
}
