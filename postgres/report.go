package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meikuraledutech/pipeline"
)

// DefaultListLimit caps ListReports when the caller passes a non-positive limit.
const DefaultListLimit = 50

// SaveReport inserts a validation report.
// If r.ID is empty, a UUID is auto-generated. CreatedAt is set by the database.
// Returns the report ID (generated or provided).
func (s *PGStore) SaveReport(ctx context.Context, r *pipeline.Report) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Source == "" {
		r.Source = pipeline.SourceNone
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO pipeline_reports (id, source, num_nodes, num_edges, is_dag)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		r.ID, r.Source, r.NumNodes, r.NumEdges, r.IsDAG,
	).Scan(&r.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("pipeline: insert report: %w", err)
	}

	return r.ID, nil
}

// GetReport fetches a single report by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetReport(ctx context.Context, id string) (*pipeline.Report, error) {
	var r pipeline.Report
	err := s.db.QueryRow(ctx,
		`SELECT id, source, num_nodes, num_edges, is_dag, created_at FROM pipeline_reports WHERE id = $1`, id,
	).Scan(&r.ID, &r.Source, &r.NumNodes, &r.NumEdges, &r.IsDAG, &r.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pipeline: get report: %w", err)
	}

	return &r, nil
}

// ListReports returns the most recent reports, newest first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListReports(ctx context.Context, limit int) ([]pipeline.Report, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, source, num_nodes, num_edges, is_dag, created_at
		 FROM pipeline_reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("pipeline: list reports: %w", err)
	}
	defer rows.Close()

	reports := []pipeline.Report{}
	for rows.Next() {
		var r pipeline.Report
		if err := rows.Scan(&r.ID, &r.Source, &r.NumNodes, &r.NumEdges, &r.IsDAG, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("pipeline: scan report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: rows reports: %w", err)
	}

	return reports, nil
}

// DeleteReport deletes a report by its ID.
// Returns ErrReportNotFound if the report doesn't exist.
func (s *PGStore) DeleteReport(ctx context.Context, id string) error {
	ct, err := s.db.Exec(ctx, `DELETE FROM pipeline_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pipeline: delete report: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return pipeline.ErrReportNotFound
	}
	return nil
}
