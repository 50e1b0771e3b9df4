// Package memory is the default backend: an in-memory transaction list with
// optional durable JSON slots on disk. The slot layout mirrors the persisted
// state contract: one slot keyed "user" holding the identity record, one
// keyed "transactions" holding the full ordered list. Absent or corrupt
// slots load as empty defaults, never as errors.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

const (
	userSlot         = "user"
	transactionsSlot = "transactions"
)

type Store struct {
	mu    sync.Mutex
	dir   string // empty = volatile, no disk slots
	user  *core.User
	items []core.Transaction
}

// New creates a volatile in-memory store.
func New() *Store {
	return &Store{}
}

// NewFromDir creates a store backed by JSON slot files under dir, loading
// whatever valid state is already there.
func NewFromDir(dir string) *Store {
	s := &Store{dir: dir}
	s.load()
	return s
}

// Add validates and prepends the transaction, then persists the slot.
func (s *Store) Add(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Transaction{t}, s.items...)
	return s.saveSlot(transactionsSlot, s.items)
}

// List returns a copy of the ordered list, newest first.
func (s *Store) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

// Delete removes the transaction with the given ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.saveSlot(transactionsSlot, s.items)
		}
	}
	return store.ErrNotFound
}

func (s *Store) GetUser(_ context.Context) (core.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return core.User{}, false, nil
	}
	return *s.user, true, nil
}

func (s *Store) PutUser(_ context.Context, u core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return s.saveSlot(userSlot, u)
}

func (s *Store) DeleteUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if s.dir == "" {
		return nil
	}
	if err := os.Remove(s.slotPath(userSlot)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove user slot: %w", err)
	}
	return nil
}

// load reads both slots, discarding anything malformed. A partial or corrupt
// file yields the empty default for that slot only.
func (s *Store) load() {
	if s.dir == "" {
		return
	}
	var u core.User
	if readSlot(s.slotPath(userSlot), &u) && u.ID != "" {
		s.user = &u
	}
	var items []core.Transaction
	if readSlot(s.slotPath(transactionsSlot), &items) {
		s.items = items
	}
}

func (s *Store) saveSlot(slot string, v any) error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s slot: %w", slot, err)
	}
	// Whole-slot rewrite, atomically: write a temp file, then rename.
	path := s.slotPath(slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s slot: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s slot: %w", slot, err)
	}
	return nil
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func readSlot(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
