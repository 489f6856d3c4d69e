// ABOUTME: Local session keyring backed by Badger.
// ABOUTME: Remembers which account is logged in between CLI invocations.

package keyring

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/prvault/internal/models"
)

// ErrNoSession indicates no account is currently logged in.
var ErrNoSession = errors.New("not logged in")

var sessionKey = []byte("session")

// Keyring persists the active session on disk.
type Keyring struct {
	db *badger.DB
}

// Open opens (or creates) the keyring at dir.
func Open(dir string) (*Keyring, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create keyring directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return &Keyring{db: db}, nil
}

// SaveSession stores the session, replacing any previous one.
func (k *Keyring) SaveSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey, data)
	})
}

// Session returns the stored session, or ErrNoSession if none exists.
func (k *Keyring) Session() (*models.Session, error) {
	var data []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Clear removes the stored session. Clearing an empty keyring is not an error.
func (k *Keyring) Clear() error {
	return k.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey)
	})
}

// Close closes the underlying store.
func (k *Keyring) Close() error {
	return k.db.Close()
}
