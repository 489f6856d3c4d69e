// ABOUTME: Shared test helpers for service tests.
// ABOUTME: Provides isolated stores and pre-registered users.
package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/prvault/internal/storage"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := storage.Open(dbPath)
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func registerTestUser(t *testing.T, store *storage.Store, username string) string {
	t.Helper()
	accounts := NewAccountService(store, zerolog.Nop())
	id, err := accounts.Register(context.Background(), username, "hunter2")
	require.NoError(t, err, "register test user")
	return id
}
