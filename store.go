package pipeline

import (
	"context"
	"errors"
	"time"
)

var (
	ErrReportNotFound = errors.New("pipeline: report not found")
	ErrStoreDisabled  = errors.New("pipeline: report store not configured")
)

// Source values describe how a payload reached the service.
const (
	SourceJSONObject = "json_object"
	SourceJSONField  = "json_field"
	SourceForm       = "form"
	SourceQuery      = "query"
	SourceCLI        = "cli"
	SourceNone       = "none"
)

// Report is a stored validation outcome. The pipeline itself is never kept.
type Report struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	NumNodes  int       `json:"num_nodes"`
	NumEdges  int       `json:"num_edges"`
	IsDAG     bool      `json:"is_dag"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReport wraps a Result for storage. ID may be empty; stores assign one.
func NewReport(id, source string, r Result) *Report {
	return &Report{
		ID:       id,
		Source:   source,
		NumNodes: r.NumNodes,
		NumEdges: r.NumEdges,
		IsDAG:    r.IsDAG,
	}
}

// Result returns the counts and verdict held by the report.
func (r *Report) Result() Result {
	return Result{NumNodes: r.NumNodes, NumEdges: r.NumEdges, IsDAG: r.IsDAG}
}

// ReportStore defines the contract for persisting validation reports.
type ReportStore interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Reports
	SaveReport(ctx context.Context, r *Report) (string, error)
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context, limit int) ([]Report, error)
	DeleteReport(ctx context.Context, id string) error
}
