package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pipeline_reports (
    id         TEXT PRIMARY KEY,
    source     TEXT NOT NULL DEFAULT 'none',
    num_nodes  INTEGER NOT NULL,
    num_edges  INTEGER NOT NULL,
    is_dag     BOOLEAN NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_pipeline_reports_created_at ON pipeline_reports(created_at DESC);
`

// CreateSchema creates the pipeline_reports table if it doesn't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the pipeline_reports table.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS pipeline_reports CASCADE;`)
	return err
}
