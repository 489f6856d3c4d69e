// ABOUTME: Workout template service: CRUD over user-authored templates
// ABOUTME: plus read access to completion history.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

// WorkoutService manages workout templates and their completion history.
type WorkoutService struct {
	store *storage.Store
	log   zerolog.Logger
}

// NewWorkoutService creates a WorkoutService over the given store.
func NewWorkoutService(store *storage.Store, log zerolog.Logger) *WorkoutService {
	return &WorkoutService{store: store, log: log}
}

// Create stores a new template and returns its id. Name and at least
// one exercise are required.
func (s *WorkoutService) Create(ctx context.Context, userID, name, description string, exercises []models.Exercise) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: workout name is required", ErrInvalidInput)
	}
	if len(exercises) == 0 {
		return "", fmt.Errorf("%w: at least one exercise is required", ErrInvalidInput)
	}

	w := models.NewWorkout(userID, name, description, exercises)
	blob, err := models.MarshalExercises(exercises)
	if err != nil {
		return "", err
	}

	err = s.store.Execute(ctx,
		"INSERT INTO workouts (id, user_id, name, description, exercises, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		w.ID, w.UserID, w.Name, w.Description, blob, w.CreatedAt.Format(time.RFC3339))
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("workout create failed")
		return "", fmt.Errorf("create workout: %w", err)
	}
	return w.ID, nil
}

// List returns the user's templates, newest first.
func (s *WorkoutService) List(ctx context.Context, userID string) ([]*models.Workout, error) {
	var workouts []*models.Workout
	err := s.store.FetchAll(ctx, func(r storage.Row) error {
		w, err := scanWorkout(r)
		if err != nil {
			return err
		}
		workouts = append(workouts, w)
		return nil
	}, "SELECT id, user_id, name, description, exercises, created_at FROM workouts WHERE user_id = ? ORDER BY created_at DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Get retrieves one template by id or unambiguous id prefix.
func (s *WorkoutService) Get(ctx context.Context, userID, workoutID string) (*models.Workout, error) {
	id, err := s.resolveWorkoutID(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	var w *models.Workout
	err = s.store.FetchFirst(ctx, func(r storage.Row) error {
		var scanErr error
		w, scanErr = scanWorkout(r)
		return scanErr
	}, "SELECT id, user_id, name, description, exercises, created_at FROM workouts WHERE id = ? AND user_id = ?",
		id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// Delete hard-deletes a template. Historical workout_logs keep their
// workout_id reference; history survives template deletion.
func (s *WorkoutService) Delete(ctx context.Context, userID, workoutID string) error {
	id, err := s.resolveWorkoutID(ctx, userID, workoutID)
	if err != nil {
		return err
	}

	affected, err := s.store.ExecuteResult(ctx,
		"DELETE FROM workouts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Logs lists the user's completion history, newest first.
func (s *WorkoutService) Logs(ctx context.Context, userID string, limit int) ([]*models.WorkoutLog, error) {
	if limit <= 0 {
		limit = 20
	}

	var logs []*models.WorkoutLog
	err := s.store.FetchAll(ctx, func(r storage.Row) error {
		var entry models.WorkoutLog
		var completedAt string
		var duration sql.NullInt64
		var notes sql.NullString
		if err := r.Scan(&entry.ID, &entry.UserID, &entry.WorkoutID, &completedAt, &duration, &notes); err != nil {
			return err
		}
		entry.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		entry.Duration = int(duration.Int64)
		entry.Notes = notes.String
		logs = append(logs, &entry)
		return nil
	}, "SELECT id, user_id, workout_id, completed_at, duration, notes FROM workout_logs WHERE user_id = ? ORDER BY completed_at DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

// Sets lists the persisted sets of one completion log, in exercise and
// set-number order.
func (s *WorkoutService) Sets(ctx context.Context, logID string) ([]*models.WorkoutSet, error) {
	var sets []*models.WorkoutSet
	err := s.store.FetchAll(ctx, func(r storage.Row) error {
		var set models.WorkoutSet
		var completed int
		if err := r.Scan(&set.ID, &set.WorkoutLogID, &set.ExerciseName, &set.SetNumber, &set.Reps, &set.Weight, &completed); err != nil {
			return err
		}
		set.Completed = completed != 0
		sets = append(sets, &set)
		return nil
	}, "SELECT id, workout_log_id, exercise_name, set_number, reps, weight, completed FROM workout_sets WHERE workout_log_id = ? ORDER BY exercise_name, set_number",
		logID)
	if err != nil {
		return nil, fmt.Errorf("list workout sets: %w", err)
	}
	return sets, nil
}

// resolveWorkoutID finds the full ID from a prefix.
func (s *WorkoutService) resolveWorkoutID(ctx context.Context, userID, idOrPrefix string) (string, error) {
	if idOrPrefix == "" {
		return "", ErrNotFound
	}

	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	var matches []string
	err := s.store.FetchAll(ctx, func(r storage.Row) error {
		var id string
		if err := r.Scan(&id); err != nil {
			return err
		}
		matches = append(matches, id)
		return nil
	}, "SELECT id FROM workouts WHERE user_id = ? AND id LIKE ? || '%'", userID, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve workout ID: %w", err)
	}

	if len(matches) == 0 {
		return "", ErrNotFound
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple workouts", idOrPrefix)
	}
	return matches[0], nil
}

func scanWorkout(r storage.Row) (*models.Workout, error) {
	var w models.Workout
	var description, blob sql.NullString
	var createdAt string

	if err := r.Scan(&w.ID, &w.UserID, &w.Name, &description, &blob, &createdAt); err != nil {
		return nil, err
	}

	w.Description = description.String
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	exercises, err := models.UnmarshalExercises(blob.String)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises
	return &w, nil
}
