// ABOUTME: Workout session state machine: expand a template into a set
// ABOUTME: checklist, track completion in memory, persist only on finish.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

// SessionState is the lifecycle of one workout session.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionActive
	SessionRecorded
)

// SetEntry is one row of the session checklist: a single {exercise, set
// index} pair. Reps and Weight are free text until finish, when they
// are coerced to numbers.
type SetEntry struct {
	ExerciseName string
	SetNumber    int
	TargetReps   int
	Reps         string
	Weight       string
	Completed    bool
}

// SessionService creates workout sessions bound to the store.
type SessionService struct {
	store *storage.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewSessionService creates a SessionService over the given store.
func NewSessionService(store *storage.Store, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, log: log, now: time.Now}
}

// WorkoutSession is one in-progress execution of a template. All state
// lives in memory until Finish; Cancel discards it without persistence.
type WorkoutSession struct {
	svc       *SessionService
	userID    string
	workout   *models.Workout
	state     SessionState
	sets      []SetEntry
	startedAt time.Time
}

// New builds a session from a template. The template needs at least one
// exercise to be usable.
func (s *SessionService) New(userID string, workout *models.Workout) (*WorkoutSession, error) {
	if len(workout.Exercises) == 0 {
		return nil, fmt.Errorf("%w: workout has no exercises", ErrInvalidInput)
	}
	ws := &WorkoutSession{
		svc:     s,
		userID:  userID,
		workout: workout,
	}
	ws.expandSets()
	return ws, nil
}

// expandSets builds the flat checklist: target-sets entries per exercise.
func (ws *WorkoutSession) expandSets() {
	ws.sets = ws.sets[:0]
	for _, ex := range ws.workout.Exercises {
		for i := 1; i <= ex.Sets; i++ {
			ws.sets = append(ws.sets, SetEntry{
				ExerciseName: ex.Name,
				SetNumber:    i,
				TargetReps:   ex.Reps,
			})
		}
	}
}

// State returns the current lifecycle state.
func (ws *WorkoutSession) State() SessionState {
	return ws.state
}

// Sets returns the checklist entries in expansion order.
func (ws *WorkoutSession) Sets() []SetEntry {
	return ws.sets
}

// Start activates the session and records the start timestamp.
func (ws *WorkoutSession) Start() error {
	if ws.state != SessionNotStarted {
		return fmt.Errorf("session already started")
	}
	ws.state = SessionActive
	ws.startedAt = ws.svc.now()
	return nil
}

func (ws *WorkoutSession) entry(index int) (*SetEntry, error) {
	if ws.state != SessionActive {
		return nil, fmt.Errorf("session not active")
	}
	if index < 0 || index >= len(ws.sets) {
		return nil, fmt.Errorf("%w: set index %d out of range", ErrInvalidInput, index)
	}
	return &ws.sets[index], nil
}

// SetReps updates one entry's reps text.
func (ws *WorkoutSession) SetReps(index int, value string) error {
	e, err := ws.entry(index)
	if err != nil {
		return err
	}
	e.Reps = value
	return nil
}

// SetWeight updates one entry's weight text.
func (ws *WorkoutSession) SetWeight(index int, value string) error {
	e, err := ws.entry(index)
	if err != nil {
		return err
	}
	e.Weight = value
	return nil
}

// ToggleCompleted flips one entry's completed flag. Reps and weight are
// not validated here.
func (ws *WorkoutSession) ToggleCompleted(index int) error {
	e, err := ws.entry(index)
	if err != nil {
		return err
	}
	e.Completed = !e.Completed
	return nil
}

// Cancel discards all set state and returns to NotStarted. Nothing is
// persisted.
func (ws *WorkoutSession) Cancel() error {
	if ws.state != SessionActive {
		return fmt.Errorf("session not active")
	}
	ws.state = SessionNotStarted
	ws.startedAt = time.Time{}
	ws.expandSets()
	return nil
}

// Finish persists one workout_log plus one workout_set per completed
// entry, in a single transaction, and moves the session to its terminal
// Recorded state. With zero completed entries it fails with
// ErrNoCompletedSets and the session stays active.
func (ws *WorkoutSession) Finish(ctx context.Context) (*models.WorkoutLog, error) {
	if ws.state != SessionActive {
		return nil, fmt.Errorf("session not active")
	}

	var completed []SetEntry
	for _, e := range ws.sets {
		if e.Completed {
			completed = append(completed, e)
		}
	}
	if len(completed) == 0 {
		return nil, ErrNoCompletedSets
	}

	now := ws.svc.now()
	entry := &models.WorkoutLog{
		ID:          uuid.New().String(),
		UserID:      ws.userID,
		WorkoutID:   ws.workout.ID,
		CompletedAt: now,
		Duration:    int(now.Sub(ws.startedAt).Seconds()),
	}

	err := ws.svc.store.WithTx(ctx, func(tx *storage.Tx) error {
		if err := tx.Execute(ctx,
			"INSERT INTO workout_logs (id, user_id, workout_id, completed_at, duration, notes) VALUES (?, ?, ?, ?, ?, ?)",
			entry.ID, entry.UserID, entry.WorkoutID, entry.CompletedAt.Format(time.RFC3339), entry.Duration, entry.Notes); err != nil {
			return err
		}
		for _, e := range completed {
			// Free-text reps/weight coerce to 0 rather than failing the save.
			reps, _ := strconv.Atoi(e.Reps)
			weight, _ := strconv.ParseFloat(e.Weight, 64)
			if err := tx.Execute(ctx,
				"INSERT INTO workout_sets (id, workout_log_id, exercise_name, set_number, reps, weight, completed) VALUES (?, ?, ?, ?, ?, ?, 1)",
				uuid.New().String(), entry.ID, e.ExerciseName, e.SetNumber, reps, weight); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		ws.svc.log.Error().Err(err).Str("workout_id", ws.workout.ID).Msg("session finish failed")
		return nil, fmt.Errorf("finish session: %w", err)
	}

	ws.state = SessionRecorded
	return entry, nil
}
