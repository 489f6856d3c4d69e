// ABOUTME: CLI commands for managing workout templates.
// ABOUTME: Supports create, list, show, delete, and history subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/models"
)

var (
	workoutExercises   []string
	workoutDescription string
	workoutHistLimit   int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout templates",
	Long: `Create and manage reusable workout templates.

A template is an ordered list of exercises with target sets and reps.
Run one with 'prvault session <id>'; the completed session is recorded
in your history. Deleting a template never deletes its history.

WORKFLOW:

  1. Create a template:  prvault workout create "Push Day" -e "Bench Press:3:10"
  2. Run a session:      prvault session <id> --set 0:10:80
  3. Review history:     prvault workout history

EXERCISE FORMAT:

  Each --exercise is NAME:SETS:REPS, e.g. "Incline DB Press:4:8".

COMMANDS:

  create    Create a new template
  list      List your templates
  show      View a template's exercises
  delete    Delete a template (history survives)
  history   List completed sessions`,
}

var workoutCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a workout template",
	Long: `Create a workout template from exercise specs.

Examples:
  prvault workout create "Push Day" -e "Bench Press:3:10" -e "Dips:3:8"
  prvault workout create "Legs" -d "squat focus" -e "Squat:5:5"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		if len(workoutExercises) == 0 {
			return fmt.Errorf("at least one --exercise is required")
		}

		exercises := make([]models.Exercise, 0, len(workoutExercises))
		for _, spec := range workoutExercises {
			ex, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			exercises = append(exercises, ex)
		}

		id, err := workoutSvc.Create(cmd.Context(), session.ID, args[0], workoutDescription, exercises)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Created %s", args[0])
		fmt.Printf("  ID: %s\n", id[:8])
		fmt.Printf("  Exercises: %d\n", len(exercises))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		workouts, err := workoutSvc.List(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workout templates found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			desc := ""
			if w.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(w.Description, 30))
			}
			fmt.Printf("%s %s %s %d exercises%s\n",
				faint.Sprint(w.ID[:8]),
				faint.Sprint(w.CreatedAt.Format("2006-01-02")),
				padRight(w.Name, 20),
				len(w.Exercises),
				desc)
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show template details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		w, err := workoutSvc.Get(cmd.Context(), session.ID, args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}

		fmt.Printf("Workout: %s\n", w.Name)
		fmt.Printf("ID: %s\n", w.ID[:8])
		if w.Description != "" {
			fmt.Printf("Description: %s\n", w.Description)
		}
		fmt.Printf("Created: %s\n", w.CreatedAt.Format("2006-01-02"))

		fmt.Println("\nExercises:")
		for i, ex := range w.Exercises {
			fmt.Printf("  %d. %s %dx%d\n", i+1, ex.Name, ex.Sets, ex.Reps)
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a template",
	Long: `Delete a workout template.

Completed sessions recorded from this template remain in your history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		if err := workoutSvc.Delete(cmd.Context(), session.ID, args[0]); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %s", args[0])
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history [log-id]",
	Short: "List completed sessions",
	Long: `List completed sessions, newest first.

With a log ID argument, show the individual sets recorded in that session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return showSessionSets(cmd, args[0])
		}

		logs, err := workoutSvc.Logs(cmd.Context(), session.ID, workoutHistLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			mins := l.Duration / 60
			fmt.Printf("%s %s %d min\n",
				faint.Sprint(l.ID[:8]),
				faint.Sprint(l.CompletedAt.Format("2006-01-02 15:04")),
				mins)
		}
		return nil
	},
}

func showSessionSets(cmd *cobra.Command, logID string) error {
	sets, err := workoutSvc.Sets(cmd.Context(), logID)
	if err != nil {
		return fmt.Errorf("failed to load sets: %w", err)
	}

	if len(sets) == 0 {
		fmt.Println("No sets recorded for that session.")
		return nil
	}

	for _, s := range sets {
		fmt.Printf("  %s set %d: %d reps @ %.1f kg\n",
			s.ExerciseName, s.SetNumber, s.Reps, s.Weight)
	}
	return nil
}

// parseExerciseSpec parses "NAME:SETS:REPS" into an Exercise.
func parseExerciseSpec(spec string) (models.Exercise, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: want NAME:SETS:REPS", spec)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: empty name", spec)
	}

	sets, err := strconv.Atoi(parts[1])
	if err != nil || sets < 1 {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: bad set count", spec)
	}
	reps, err := strconv.Atoi(parts[2])
	if err != nil || reps < 1 {
		return models.Exercise{}, fmt.Errorf("invalid exercise %q: bad rep count", spec)
	}

	return models.Exercise{Name: name, Sets: sets, Reps: reps}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutCreateCmd.Flags().StringArrayVarP(&workoutExercises, "exercise", "e", nil, "exercise spec NAME:SETS:REPS (repeatable)")
	workoutCreateCmd.Flags().StringVarP(&workoutDescription, "description", "d", "", "template description")

	workoutHistoryCmd.Flags().IntVarP(&workoutHistLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutCreateCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	rootCmd.AddCommand(workoutCmd)
}
