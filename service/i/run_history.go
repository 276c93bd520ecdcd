package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// RunHistory keeps the most recent run summaries of each board.
type RunHistory interface {
	Record(ctx context.Context, boardID uuid.UUID, summary dmn.RunSummary) error
	// Recent returns up to n summaries, newest first.
	Recent(ctx context.Context, boardID uuid.UUID, n int64) ([]dmn.RunSummary, error)
}

// RunRecorder observes finished runs, e.g. for metrics.
type RunRecorder interface {
	ObserveRun(algorithm string, visited, path int, took time.Duration)
}
