// ABOUTME: Streak and daily-progress calculations over bodyweight log dates.
// ABOUTME: Pure functions; callers fetch rows and pass the date keys in.
package progress

import "time"

// maxStreakDays caps the backward walk so a pathological log set cannot
// loop forever.
const maxStreakDays = 365

// DateKey formats a time as the YYYY-MM-DD calendar-day key used in the
// bodyweight_logs ts column. Keys are UTC so a log written late at night
// lands on the same day it is read back.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Streak counts consecutive calendar days ending today that have at
// least one log entry. Multiple entries on one day count once; the walk
// stops at the first gap.
func Streak(dateKeys []string, today time.Time) int {
	if len(dateKeys) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(dateKeys))
	for _, k := range dateKeys {
		seen[k] = true
	}

	streak := 0
	for d := 0; d <= maxStreakDays; d++ {
		if !seen[DateKey(today.AddDate(0, 0, -d))] {
			break
		}
		streak++
	}
	return streak
}

// Daily returns the daily progress percentage: 100 if today has any log
// entry, 0 otherwise.
func Daily(dateKeys []string, today time.Time) int {
	key := DateKey(today)
	for _, k := range dateKeys {
		if k == key {
			return 100
		}
	}
	return 0
}
