// Package jsonfile persists the bank state as a single JSON snapshot on
// disk: three flat collections (users, cards, ledger entries) loaded at
// startup and flushed synchronously on every write. Mutations are
// all-or-nothing: when a write function fails, the snapshot is reloaded from
// disk so no partial state survives, and each flush replaces the file with an
// atomic rename so a failed flush never corrupts the durable copy.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// snapshot is the on-disk layout. Version allows forward migration of the
// file format.
type snapshot struct {
	Version   int                     `json:"version"`
	Users     map[string]*domain.User `json:"users"`
	Cards     map[string]*domain.Card `json:"cards"`
	Entries   []domain.LedgerEntry    `json:"entries"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Store is a file-backed key-value store guarded by a RWMutex. It is the
// single writer for all three collections.
type Store struct {
	mu   sync.RWMutex
	snap *snapshot
	path string
}

// Open loads (or creates) the snapshot file into memory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", path, err)
	}
	return s, nil
}

// Close flushes the snapshot one final time.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(data) == 0) {
		now := time.Now()
		s.snap = &snapshot{
			Version:   1,
			Users:     map[string]*domain.User{},
			Cards:     map[string]*domain.Card{},
			Entries:   []domain.LedgerEntry{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		return s.flushLocked()
	}
	if err != nil {
		return err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Users == nil {
		snap.Users = map[string]*domain.User{}
	}
	if snap.Cards == nil {
		snap.Cards = map[string]*domain.Card{}
	}
	s.snap = &snap
	return nil
}

// flushLocked encodes the snapshot into a temp file next to the live one and
// renames it into place, so the durable copy is never left half-written.
func (s *Store) flushLocked() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.snap); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

// withWrite runs fn under the write lock and flushes the snapshot. If fn or
// the flush fails, the snapshot is reloaded from disk so the in-memory state
// matches the last durable state.
func (s *Store) withWrite(ctx context.Context, fn func(*snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if err := fn(s.snap); err != nil {
		if rerr := s.load(); rerr != nil {
			return fmt.Errorf("write rejected (%w) and snapshot reload failed: %v", err, rerr)
		}
		return err
	}
	s.snap.UpdatedAt = time.Now()
	if err := s.flushLocked(); err != nil {
		if rerr := s.load(); rerr != nil {
			return fmt.Errorf("flush failed (%w) and snapshot reload failed: %v", err, rerr)
		}
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	return nil
}

func (s *Store) withRead(fn func(*snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}
