package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meikuraledutech/route"
)

// Append inserts a history entry. If entry.ID is empty, a UUID is
// auto-generated; if the timestamp is zero, it is set server-side.
// Entries past route.MaxHistoryEntries are pruned, oldest first.
func (s *Store) Append(ctx context.Context, entry *route.HistoryEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("route: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO route_history (id, from_node, to_node, path, algorithm, total_distance, total_traffic, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.From, entry.To, entry.Path, string(entry.Algorithm),
		entry.TotalDistance, entry.TotalTraffic, entry.Timestamp,
	); err != nil {
		return "", fmt.Errorf("route: insert history: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM route_history
		 WHERE id NOT IN (SELECT id FROM route_history ORDER BY created_at DESC LIMIT $1)`,
		route.MaxHistoryEntries,
	); err != nil {
		return "", fmt.Errorf("route: prune history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("route: commit: %w", err)
	}

	return entry.ID, nil
}

// List returns up to route.MaxHistoryEntries entries, newest first.
// Returns an empty slice (not nil) if none found.
func (s *Store) List(ctx context.Context) ([]route.HistoryEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, from_node, to_node, path, algorithm, total_distance, total_traffic, created_at
		 FROM route_history ORDER BY created_at DESC LIMIT $1`,
		route.MaxHistoryEntries)
	if err != nil {
		return nil, fmt.Errorf("route: query history: %w", err)
	}
	defer rows.Close()

	entries := []route.HistoryEntry{}
	for rows.Next() {
		var e route.HistoryEntry
		var algorithm string
		if err := rows.Scan(&e.ID, &e.From, &e.To, &e.Path, &algorithm,
			&e.TotalDistance, &e.TotalTraffic, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("route: scan history: %w", err)
		}
		e.Algorithm = route.Algorithm(algorithm)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("route: rows history: %w", err)
	}

	return entries, nil
}

// Clear removes all history entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM route_history`); err != nil {
		return fmt.Errorf("route: clear history: %w", err)
	}
	return nil
}
