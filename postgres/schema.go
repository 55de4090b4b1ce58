package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS route_history (
    id             TEXT PRIMARY KEY,
    from_node      TEXT NOT NULL,
    to_node        TEXT NOT NULL,
    path           TEXT[] NOT NULL,
    algorithm      TEXT NOT NULL,
    total_distance BIGINT NOT NULL,
    total_traffic  BIGINT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_route_history_created_at ON route_history(created_at DESC);
`

// CreateSchema creates the route_history table if it doesn't exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the route_history table.
func (s *Store) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS route_history CASCADE;`)
	return err
}
