// ABOUTME: Percentage-based program generation from one-rep-max values.
// ABOUTME: Working weights round to the nearest 1.25 plate increment.
package progress

import "math"

// RoundToPlate rounds a weight to the nearest 1.25 unit.
func RoundToPlate(x float64) float64 {
	return math.Round(x/1.25) * 1.25
}

// PercentOfMax computes a plate-rounded working weight from a one-rep
// max and a percentage (0..1).
func PercentOfMax(orm, pct float64) float64 {
	return RoundToPlate(orm * pct)
}

// ProgramExercise is one prescribed exercise in a program day. Weight is
// nil when the lifter picks the load (machines, bodyweight work).
type ProgramExercise struct {
	Name   string   `json:"name"`
	Sets   string   `json:"sets,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// ProgramDay is one day of the five-day split.
type ProgramDay struct {
	Title     string            `json:"title"`
	Exercises []ProgramExercise `json:"exercises"`
}

// DeadliftPrescription is the deadlift slot for a program week.
type DeadliftPrescription struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// DeadliftWeek returns the deadlift work for the given week of the
// cycle. Weeks past 6 are the test day.
func DeadliftWeek(week int, deadliftORM float64) DeadliftPrescription {
	switch {
	case week <= 1:
		return DeadliftPrescription{Label: "RDL 3x10", Weight: RoundToPlate(deadliftORM * 0.25)}
	case week == 2:
		return DeadliftPrescription{Label: "DL 4x5 light", Weight: RoundToPlate(deadliftORM * 0.35)}
	case week == 3:
		return DeadliftPrescription{Label: "DL 3x3", Weight: RoundToPlate(deadliftORM * 0.55)}
	case week == 4:
		return DeadliftPrescription{Label: "DL 3x2", Weight: RoundToPlate(deadliftORM * 0.75)}
	case week == 5:
		return DeadliftPrescription{Label: "DL 3x3 heavier", Weight: RoundToPlate(deadliftORM * 0.65)}
	case week == 6:
		return DeadliftPrescription{Label: "DL 3x2 heavier", Weight: RoundToPlate(deadliftORM * 0.8)}
	default:
		return DeadliftPrescription{Label: "DL 1-3RM test day", Weight: RoundToPlate(deadliftORM * 0.9)}
	}
}

func weight(w float64) *float64 { return &w }

// GenerateProgram builds the five-day split for a week of the cycle from
// the three one-rep-max values. Pure: same inputs, same output.
func GenerateProgram(bench, squat, deadlift float64, week int) []ProgramDay {
	dl := DeadliftWeek(week, deadlift)

	return []ProgramDay{
		{
			Title: "Day 1 - Push (Heavy Chest)",
			Exercises: []ProgramExercise{
				{Name: "Bench Press (wide) - heavy", Sets: "5x3-5", Weight: weight(PercentOfMax(bench, 0.82))},
				{Name: "Incline DB Press", Sets: "4x8", Weight: weight(16.0)},
				{Name: "Weighted Dips", Sets: "3x5-8"},
				{Name: "Machine Chest Press", Sets: "3x10"},
				{Name: "Cable Flyes", Sets: "3x12"},
				{Name: "Tricep Pushdown", Sets: "2x15", Weight: weight(20.0)},
			},
		},
		{
			Title: "Day 2 - Pull (Strength + DL)",
			Exercises: []ProgramExercise{
				{Name: dl.Label, Weight: weight(dl.Weight)},
				{Name: "Bent Over Row", Sets: "4x6", Weight: weight(PercentOfMax(deadlift, 0.45))},
				{Name: "Weighted Pull-Ups", Sets: "4x5"},
				{Name: "Lat Pulldown", Sets: "3x8"},
				{Name: "Cable Row", Sets: "3x10"},
				{Name: "Face Pulls", Sets: "3x15"},
				{Name: "Hammer Curls", Sets: "3x10", Weight: weight(16.0)},
			},
		},
		{
			Title: "Day 3 - Legs (Power)",
			Exercises: []ProgramExercise{
				{Name: "Squat", Sets: "5x5", Weight: weight(PercentOfMax(squat, 0.75))},
				{Name: "Leg Press", Sets: "4x10", Weight: weight(95.0)},
				{Name: "RDL (light)", Sets: "3x8-10", Weight: weight(PercentOfMax(deadlift, 0.35))},
				{Name: "Leg Extension", Sets: "3x12"},
				{Name: "Hamstring Curl", Sets: "3x12"},
				{Name: "Calves", Sets: "3x15-20"},
			},
		},
		{
			Title: "Day 4 - Push (Volume)",
			Exercises: []ProgramExercise{
				{Name: "Bench Press - volume", Sets: "4x8", Weight: weight(PercentOfMax(bench, 0.62))},
				{Name: "Incline Smith Press", Sets: "4x10"},
				{Name: "Chest Dips (bw)", Sets: "3x10-12"},
				{Name: "Lateral Raises", Sets: "4x15"},
				{Name: "Overhead Press", Sets: "3x6", Weight: weight(PercentOfMax(bench, 0.4))},
				{Name: "Cable Flyes", Sets: "3x12"},
				{Name: "Rope Tricep Ext", Sets: "3x12"},
			},
		},
		{
			Title: "Day 5 - Pull (Volume)",
			Exercises: []ProgramExercise{
				{Name: "Pull-Ups (strict)", Sets: "3x8"},
				{Name: "Seated Row", Sets: "4x12"},
				{Name: "Single Arm Lat Pulldown", Sets: "3x10"},
				{Name: "DB Row", Sets: "3x12"},
				{Name: "Rear Delt Machine", Sets: "3x15"},
				{Name: "Barbell Curls", Sets: "3x10"},
				{Name: "Concentration Curls", Sets: "2x12"},
			},
		},
	}
}
