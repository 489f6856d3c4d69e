// ABOUTME: CLI dashboard command: streak, PRs, and recent bodyweight.
// ABOUTME: Streak is computed from bodyweight log dates at read time.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/progress"
)

// streakLookback bounds how much history the streak reads. The streak
// caps at 365 days, so one extra day of logs is enough.
const streakLookback = 366

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your training dashboard",
	Long: `Show the training dashboard: logging streak, today's progress,
current PRs, and recent bodyweight entries.

The streak counts consecutive calendar days with at least one bodyweight
log entry, ending today. Multiple entries on one day count once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		stats, err := statsSvc.Load(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		logs, err := statsSvc.RecentBodyweights(cmd.Context(), session.ID, streakLookback)
		if err != nil {
			return fmt.Errorf("failed to load bodyweight log: %w", err)
		}

		keys := make([]string, 0, len(logs))
		for _, l := range logs {
			keys = append(keys, l.Date)
		}

		now := time.Now()
		streak := progress.Streak(keys, now)
		daily := progress.Daily(keys, now)

		name := stats.Name
		if name == "" {
			name = session.Username
		}
		fmt.Printf("Dashboard for %s\n\n", name)

		if streak > 0 {
			color.Green("🔥 %d day streak", streak)
		} else {
			fmt.Println("No active streak.")
		}
		if daily == 100 {
			color.Green("✓ Logged today")
		} else {
			fmt.Println("Nothing logged yet today.")
		}

		fmt.Println("\nPRs:")
		fmt.Printf("  Bench:    %.1f kg\n", stats.Bench)
		fmt.Printf("  Squat:    %.1f kg\n", stats.Squat)
		fmt.Printf("  Deadlift: %.1f kg\n", stats.Deadlift)

		weights, err := statsSvc.RecentBodyweights(cmd.Context(), session.ID, 5)
		if err != nil {
			return fmt.Errorf("failed to load bodyweight log: %w", err)
		}
		if len(weights) > 0 {
			faint := color.New(color.Faint)
			fmt.Println("\nRecent bodyweight:")
			for _, w := range weights {
				fmt.Printf("  %s %.1f kg\n", faint.Sprint(w.Date), w.Weight)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
