// ABOUTME: CLI commands for the profile: display name, bodyweight, lift PRs.
// ABOUTME: Saving a bodyweight also appends to the bodyweight log.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileName       string
	profileBodyweight float64
	profileBench      float64
	profileSquat      float64
	profileDeadlift   float64
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage your profile and PRs",
	Long: `View and update your profile: display name, current bodyweight,
and one-rep maxes for bench, squat, and deadlift.

Updating the bodyweight appends an entry to the bodyweight log, so your
weight history accumulates over time.

Examples:
  prvault profile show
  prvault profile set --bench 102.5
  prvault profile set --bodyweight 71.2 --name "Alice"`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and PRs",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		stats, err := statsSvc.Load(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		name := stats.Name
		if name == "" {
			name = session.Username
		}
		fmt.Printf("Profile: %s\n", name)
		fmt.Printf("  Bodyweight: %.1f kg\n", stats.Bodyweight)
		fmt.Println("  PRs:")
		fmt.Printf("    Bench:    %.1f kg\n", stats.Bench)
		fmt.Printf("    Squat:    %.1f kg\n", stats.Squat)
		fmt.Printf("    Deadlift: %.1f kg\n", stats.Deadlift)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		stats, err := statsSvc.Load(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		// Only flags the user passed overwrite the stored values.
		if cmd.Flags().Changed("name") {
			stats.Name = profileName
		}
		if cmd.Flags().Changed("bodyweight") {
			stats.Bodyweight = profileBodyweight
		}
		if cmd.Flags().Changed("bench") {
			stats.Bench = profileBench
		}
		if cmd.Flags().Changed("squat") {
			stats.Squat = profileSquat
		}
		if cmd.Flags().Changed("deadlift") {
			stats.Deadlift = profileDeadlift
		}

		if err := statsSvc.Save(cmd.Context(), session.ID, stats); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

var bodyweightCmd = &cobra.Command{
	Use:     "bodyweight",
	Aliases: []string{"bw"},
	Short:   "Show recent bodyweight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		logs, err := statsSvc.RecentBodyweights(cmd.Context(), session.ID, 0)
		if err != nil {
			return fmt.Errorf("failed to load bodyweight log: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No bodyweight entries yet. Log one with 'prvault profile set --bodyweight <kg>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			fmt.Printf("%s %.1f kg\n", faint.Sprint(l.Date), l.Weight)
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().Float64Var(&profileBodyweight, "bodyweight", 0, "current bodyweight (kg)")
	profileSetCmd.Flags().Float64Var(&profileBench, "bench", 0, "bench press 1RM (kg)")
	profileSetCmd.Flags().Float64Var(&profileSquat, "squat", 0, "squat 1RM (kg)")
	profileSetCmd.Flags().Float64Var(&profileDeadlift, "deadlift", 0, "deadlift 1RM (kg)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(bodyweightCmd)
}
