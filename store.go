package route

import (
	"context"
	"time"
)

// MaxHistoryEntries bounds the route-history log; appending past the
// cap evicts the oldest entry.
const MaxHistoryEntries = 50

// HistoryEntry is one recorded route computation. Callers append an
// entry after receiving a successful Result; the engine itself never
// writes history.
type HistoryEntry struct {
	ID            string    `json:"id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Path          []string  `json:"path"`
	Algorithm     Algorithm `json:"algorithm"`
	TotalDistance int       `json:"totalDistance"`
	TotalTraffic  int       `json:"totalTraffic"`
}

// HistoryStore defines the contract for persisting the route-history
// log: newest first, capped at MaxHistoryEntries.
type HistoryStore interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Append records an entry, generating its ID and timestamp when
	// absent, and returns the ID.
	Append(ctx context.Context, entry *HistoryEntry) (string, error)
	// List returns up to MaxHistoryEntries entries, newest first.
	List(ctx context.Context) ([]HistoryEntry, error)
	// Clear removes all entries.
	Clear(ctx context.Context) error
}
