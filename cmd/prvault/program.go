// ABOUTME: CLI command that prints the generated weekly program.
// ABOUTME: Working weights derive from the stored PRs.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/prvault/internal/progress"
)

var programWeek int

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Generate your weekly program",
	Long: `Generate the five-day split from your current one-rep maxes.

Working weights are percentages of your stored PRs, rounded to the
nearest 1.25 kg plate increment. The deadlift slot follows a seven-week
wave; pass --week to select the week of the cycle.

Examples:
  prvault program              # Week 1
  prvault program --week 4     # Heavier deadlift triples`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := requireSession()
		if err != nil {
			return err
		}

		stats, err := statsSvc.Load(cmd.Context(), session.ID)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		if stats.Bench == 0 && stats.Squat == 0 && stats.Deadlift == 0 {
			return fmt.Errorf("no PRs set - run 'prvault profile set --bench <kg> --squat <kg> --deadlift <kg>' first")
		}

		program := progress.GenerateProgram(stats.Bench, stats.Squat, stats.Deadlift, programWeek)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		for i, day := range program {
			if i > 0 {
				fmt.Println()
			}
			bold.Println(day.Title)
			for _, ex := range day.Exercises {
				load := ""
				if ex.Weight != nil {
					load = fmt.Sprintf(" @ %.2f kg", *ex.Weight)
				}
				fmt.Printf("  %s %s%s\n", padRight(ex.Name, 28), faint.Sprint(ex.Sets), load)
			}
		}
		return nil
	},
}

func init() {
	programCmd.Flags().IntVarP(&programWeek, "week", "w", 1, "week of the deadlift cycle (1-7+)")
	rootCmd.AddCommand(programCmd)
}
