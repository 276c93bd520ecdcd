package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// BoardManager edits server held boards and visualizes searches on them.
type BoardManager interface {
	Create(ctx context.Context, rows, cols int) (*dmn.Board, error)
	Get(ctx context.Context, id uuid.UUID) (*dmn.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Resize(ctx context.Context, id uuid.UUID, rows, cols int) (*dmn.Board, error)
	SetWalls(ctx context.Context, id uuid.UUID, cells []grid.CellPosition, wall bool) (*dmn.Board, error)
	MoveEndpoint(ctx context.Context, id uuid.UUID, endpoint string, pos grid.CellPosition) (*dmn.Board, error)
	Clear(ctx context.Context, id uuid.UUID) (*dmn.Board, error)
	Visualize(ctx context.Context, id uuid.UUID, algorithm string) (*dmn.Run, error)
	History(ctx context.Context, id uuid.UUID) ([]dmn.RunSummary, error)
}

// LayoutManager keeps named layouts per user.
type LayoutManager interface {
	Save(ctx context.Context, ownerID, boardID uuid.UUID, name string) (*dmn.SavedLayout, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SavedLayout, error)
	Apply(ctx context.Context, ownerID uuid.UUID, name string, boardID uuid.UUID) (*dmn.Board, error)
}
