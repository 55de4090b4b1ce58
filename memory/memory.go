// Package memory provides an in-process route.HistoryStore, used when
// no database is configured. History lives only as long as the process.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/route"
)

// Store implements route.HistoryStore with a mutex-guarded slice,
// newest entry first.
type Store struct {
	mu      sync.Mutex
	entries []route.HistoryEntry
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// CreateSchema is a no-op; there is no schema to create.
func (s *Store) CreateSchema(ctx context.Context) error { return nil }

// DropSchema is a no-op.
func (s *Store) DropSchema(ctx context.Context) error { return nil }

// Append prepends the entry, generating ID and timestamp when absent,
// and evicts the oldest entry past route.MaxHistoryEntries.
func (s *Store) Append(ctx context.Context, entry *route.HistoryEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]route.HistoryEntry{*entry}, s.entries...)
	if len(s.entries) > route.MaxHistoryEntries {
		s.entries = s.entries[:route.MaxHistoryEntries]
	}
	return entry.ID, nil
}

// List returns a copy of the entries, newest first.
func (s *Store) List(ctx context.Context) ([]route.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]route.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}
