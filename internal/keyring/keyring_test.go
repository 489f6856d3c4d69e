// ABOUTME: Tests for the Badger-backed session keyring.
// ABOUTME: Covers round-trip, replacement, clearing, and reopen persistence.
package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/prvault/internal/models"
)

func openTestKeyring(t *testing.T, dir string) *Keyring {
	t.Helper()
	k, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { k.Close() })
	return k
}

func TestSessionRoundTrip(t *testing.T) {
	k := openTestKeyring(t, t.TempDir())

	_, err := k.Session()
	assert.ErrorIs(t, err, ErrNoSession)

	want := &models.Session{ID: "user-1", Username: "alice"}
	require.NoError(t, k.SaveSession(want))

	got, err := k.Session()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSessionReplaces(t *testing.T) {
	k := openTestKeyring(t, t.TempDir())

	require.NoError(t, k.SaveSession(&models.Session{ID: "user-1", Username: "alice"}))
	require.NoError(t, k.SaveSession(&models.Session{ID: "user-2", Username: "bob"}))

	got, err := k.Session()
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestClear(t *testing.T) {
	k := openTestKeyring(t, t.TempDir())

	require.NoError(t, k.SaveSession(&models.Session{ID: "user-1", Username: "alice"}))
	require.NoError(t, k.Clear())

	_, err := k.Session()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing again is fine.
	assert.NoError(t, k.Clear())
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	k, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, k.SaveSession(&models.Session{ID: "user-1", Username: "alice"}))
	require.NoError(t, k.Close())

	reopened := openTestKeyring(t, dir)
	got, err := reopened.Session()
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}
