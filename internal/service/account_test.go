// ABOUTME: Tests for registration, login, and account deletion.
// ABOUTME: Covers duplicate usernames and credential indistinguishability.
package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

func TestRegisterThenLogin(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	ctx := context.Background()

	id, err := accounts.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	session, err := accounts.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, "alice", session.Username)
}

func TestRegisterCreatesEmptyStatsRow(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	stats := NewStatsService(store, zerolog.Nop())
	ctx := context.Background()

	id, err := accounts.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	var count int
	err = store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&count)
	}, "SELECT COUNT(*) FROM user_stats WHERE user_id = ?", id)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "registration should create the stats row")

	loaded, err := stats.Load(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, loaded.Bench)
	assert.Equal(t, "{}", loaded.Preferences)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := accounts.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	_, err = accounts.Register(ctx, "alice", "different")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// No second row, and no orphaned stats row either.
	var users, statRows int
	require.NoError(t, store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&users)
	}, "SELECT COUNT(*) FROM users"))
	require.NoError(t, store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&statRows)
	}, "SELECT COUNT(*) FROM user_stats"))
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, statRows)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := accounts.Register(ctx, "  ", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = accounts.Register(ctx, "alice", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := accounts.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	_, wrongPassword := accounts.Login(ctx, "alice", "wrong")
	_, unknownUser := accounts.Login(ctx, "nobody", "hunter2")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser, "error kinds must not reveal which part was wrong")
}

func TestLoginReturnsNoHash(t *testing.T) {
	store := setupStore(t)
	accounts := NewAccountService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := accounts.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	session, err := accounts.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, &models.Session{ID: session.ID, Username: "alice"}, session)
}

func TestDeleteAccountCascades(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	nop := zerolog.Nop()
	accounts := NewAccountService(store, nop)
	stats := NewStatsService(store, nop)
	workouts := NewWorkoutService(store, nop)
	sessions := NewSessionService(store, nop)

	id := registerTestUser(t, store, "alice")
	keeper := registerTestUser(t, store, "bob")

	// Give alice rows in every owned table.
	require.NoError(t, stats.Save(ctx, id, &models.UserStats{Name: "Alice", Bodyweight: 70}))
	wid, err := workouts.Create(ctx, id, "Push Day", "", []models.Exercise{{Name: "Bench Press", Sets: 1, Reps: 5}})
	require.NoError(t, err)
	w, err := workouts.Get(ctx, id, wid)
	require.NoError(t, err)
	ws, err := sessions.New(id, w)
	require.NoError(t, err)
	require.NoError(t, ws.Start())
	require.NoError(t, ws.ToggleCompleted(0))
	_, err = ws.Finish(ctx)
	require.NoError(t, err)
	_, err = NewSettingsService(store, nop).Load(ctx, id)
	require.NoError(t, err)

	require.NoError(t, accounts.Delete(ctx, id))

	for _, q := range []string{
		"SELECT COUNT(*) FROM users WHERE id = ?",
		"SELECT COUNT(*) FROM user_stats WHERE user_id = ?",
		"SELECT COUNT(*) FROM bodyweight_logs WHERE user_id = ?",
		"SELECT COUNT(*) FROM workouts WHERE user_id = ?",
		"SELECT COUNT(*) FROM workout_logs WHERE user_id = ?",
		"SELECT COUNT(*) FROM user_settings WHERE user_id = ?",
	} {
		var count int
		require.NoError(t, store.FetchFirst(ctx, func(r storage.Row) error {
			return r.Scan(&count)
		}, q, id))
		assert.Zero(t, count, q)
	}

	var orphanSets int
	require.NoError(t, store.FetchFirst(ctx, func(r storage.Row) error {
		return r.Scan(&orphanSets)
	}, "SELECT COUNT(*) FROM workout_sets"))
	assert.Zero(t, orphanSets, "deletion should remove sets via their logs")

	// The other account is untouched.
	_, err = accounts.Login(ctx, "bob", "hunter2")
	require.NoError(t, err)
	_ = keeper
}
