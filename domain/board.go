package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// Board is a grid held by the server on behalf of a client.
type Board struct {
	ID     uuid.UUID
	Layout grid.Layout
	Render string // ASCII rendering of the grid after the last change.
}

// Run is the outcome of visualizing an algorithm on a board.
type Run struct {
	ID        uuid.UUID
	BoardID   uuid.UUID
	Algorithm string
	Visited   []grid.CellPosition // Cells in visitation order.
	Path      []grid.CellPosition // Cells from start to finish, empty when unreachable.
	Timeline  animation.Timeline
	CreatedAt time.Time
}

// Found reports whether the run reached the finish.
func (r *Run) Found() bool {
	return len(r.Path) > 0
}

// Summary condenses the run for the history log.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:           r.ID,
		Algorithm:    r.Algorithm,
		VisitedCount: len(r.Visited),
		PathLength:   len(r.Path),
		Found:        r.Found(),
		CreatedAt:    r.CreatedAt,
	}
}

// RunSummary is what the run history keeps about a past run.
type RunSummary struct {
	ID           uuid.UUID `json:"id"`
	Algorithm    string    `json:"algorithm"`
	VisitedCount int       `json:"visited_count"`
	PathLength   int       `json:"path_length"`
	Found        bool      `json:"found"`
	CreatedAt    time.Time `json:"created_at"`
}

// SavedLayout is a named layout owned by a user.
type SavedLayout struct {
	OwnerID   uuid.UUID   `bson:"ownerId"`
	Name      string      `bson:"name"`
	Layout    grid.Layout `bson:"layout"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}
