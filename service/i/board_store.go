package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// BoardStore keeps the boards clients are editing.
type BoardStore interface {
	// Load returns dmn.ErrBoardNotFound for unknown or expired boards.
	Load(ctx context.Context, id uuid.UUID) (*grid.Grid, error)
	Save(ctx context.Context, id uuid.UUID, g *grid.Grid) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock serializes changes to one board. The returned function releases the lock.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}
