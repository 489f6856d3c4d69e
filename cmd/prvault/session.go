// ABOUTME: CLI command for running a workout session from a template.
// ABOUTME: Records completed sets and writes the session to history.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionSets []string

var sessionCmd = &cobra.Command{
	Use:   "session <workout-id>",
	Short: "Run a workout session",
	Long: `Run a session from a workout template.

Without --set flags, prints the planned sets with their indexes.
With --set flags, records the given sets as completed and saves the
session to history. Sets you don't pass are left incomplete and are
not persisted.

SET FORMAT:

  Each --set is INDEX:REPS[:WEIGHT]. Indexes come from the plan output.

Examples:
  prvault session a1b2c3d4                      # Show the plan
  prvault session a1b2c3d4 --set 0:10:80 --set 1:8:77.5
  prvault session a1b2c3d4 --set 2:8            # Bodyweight set, no load`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		w, err := workoutSvc.Get(cmd.Context(), session.ID, args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		ws, err := sessionSvc.New(session.ID, w)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		if len(sessionSets) == 0 {
			fmt.Printf("Plan for %s:\n", w.Name)
			for i, entry := range ws.Sets() {
				fmt.Printf("  [%d] %s set %d: %d reps\n",
					i, entry.ExerciseName, entry.SetNumber, entry.TargetReps)
			}
			fmt.Println("\nRecord it with --set INDEX:REPS[:WEIGHT].")
			return nil
		}

		if err := ws.Start(); err != nil {
			return err
		}

		for _, spec := range sessionSets {
			index, reps, weight, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			if err := ws.SetReps(index, reps); err != nil {
				return fmt.Errorf("set %d: %w", index, err)
			}
			if weight != "" {
				if err := ws.SetWeight(index, weight); err != nil {
					return fmt.Errorf("set %d: %w", index, err)
				}
			}
			if err := ws.ToggleCompleted(index); err != nil {
				return fmt.Errorf("set %d: %w", index, err)
			}
		}

		logEntry, err := ws.Finish(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to finish session: %w", err)
		}

		color.Green("✓ Recorded %s", w.Name)
		fmt.Printf("  Log: %s\n", logEntry.ID[:8])
		fmt.Printf("  Sets: %d of %d completed\n", len(sessionSets), len(ws.Sets()))
		return nil
	},
}

// parseSetSpec parses "INDEX:REPS[:WEIGHT]" from a --set flag.
func parseSetSpec(spec string) (index int, reps, weight string, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, "", "", fmt.Errorf("invalid set %q: want INDEX:REPS[:WEIGHT]", spec)
	}

	index, err = strconv.Atoi(parts[0])
	if err != nil || index < 0 {
		return 0, "", "", fmt.Errorf("invalid set %q: bad index", spec)
	}

	reps = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		weight = strings.TrimSpace(parts[2])
	}
	return index, reps, weight, nil
}

func init() {
	sessionCmd.Flags().StringArrayVarP(&sessionSets, "set", "s", nil, "completed set INDEX:REPS[:WEIGHT] (repeatable)")
	rootCmd.AddCommand(sessionCmd)
}
