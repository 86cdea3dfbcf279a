// Package store persists assessment runs and their indicator results.
package store

import (
	"context"
	"time"

	"github.com/geosafe/impact-cli/internal/postprocessor"
)

// Run is one recorded assessment: the scenario label, the scalar inputs it
// was computed from, and when it ran.
type Run struct {
	ID        string
	Scenario  string
	Params    map[string]float64
	CreatedAt time.Time
}

// Store defines the persistence interface for assessment runs.
type Store interface {
	CreateRun(ctx context.Context, scenario string, params postprocessor.Params) (*Run, error)
	AppendResults(ctx context.Context, runID string, results []postprocessor.Result) error
	GetRun(ctx context.Context, runID string) (*Run, error)
	GetResults(ctx context.Context, runID string) ([]postprocessor.Result, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
