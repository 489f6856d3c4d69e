// ABOUTME: Workout template, completion log, and per-set history models.
// ABOUTME: Exercises serialize as a JSON array inside the workouts row.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exercise is one entry in a workout template's ordered exercise list.
// Sets and Reps are targets, not what was actually performed.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// Workout is a reusable user-authored template. It is immutable after
// creation except for explicit deletion.
type Workout struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Exercises   []Exercise
	CreatedAt   time.Time
}

// NewWorkout creates a Workout with a generated UUID and current timestamp.
func NewWorkout(userID, name, description string, exercises []Exercise) *Workout {
	return &Workout{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Exercises:   exercises,
		CreatedAt:   time.Now(),
	}
}

// MarshalExercises encodes the exercise list for the exercises column.
func MarshalExercises(exercises []Exercise) (string, error) {
	data, err := json.Marshal(exercises)
	if err != nil {
		return "", fmt.Errorf("marshal exercises: %w", err)
	}
	return string(data), nil
}

// UnmarshalExercises decodes the exercises column. An empty or missing
// blob decodes to an empty list rather than an error.
func UnmarshalExercises(blob string) ([]Exercise, error) {
	if blob == "" {
		return nil, nil
	}
	var exercises []Exercise
	if err := json.Unmarshal([]byte(blob), &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return exercises, nil
}

// WorkoutLog records one finished session. WorkoutID may reference a
// deleted template; history survives template deletion.
type WorkoutLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	WorkoutID   string    `json:"workout_id"`
	CompletedAt time.Time `json:"completed_at"`
	Duration    int       `json:"duration"` // seconds
	Notes       string    `json:"notes,omitempty"`
}

// WorkoutSet is one completed set within a WorkoutLog. Only completed
// sets are ever persisted.
type WorkoutSet struct {
	ID           string
	WorkoutLogID string
	ExerciseName string
	SetNumber    int
	Reps         int
	Weight       float64
	Completed    bool
}
