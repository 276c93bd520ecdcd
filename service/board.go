package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultHistorySize = 20
)

// Endpoint names accepted by MoveEndpoint.
const (
	EndpointStart  = "start"
	EndpointFinish = "finish"
)

var (
	ErrUnknownEndpoint = errors.New("unknown endpoint, expected start or finish")
	ErrMissingStore    = errors.New("board store is required")
)

// BoardConfig holds the dependencies of a BoardService.
type BoardConfig struct {
	Store       i.BoardStore
	History     i.RunHistory  // Optional, runs are not logged when nil.
	Recorder    i.RunRecorder // Optional.
	Logger      i.Logger
	Animation   animation.Options
	HistorySize int64
}

// BoardService edits boards and visualizes algorithms on them.
// Every operation on a board runs under the store's lock for that board.
type BoardService struct {
	store       i.BoardStore
	history     i.RunHistory
	recorder    i.RunRecorder
	logger      i.Logger
	animation   animation.Options
	historySize int64
	now         func() time.Time
}

// NewBoardService creates a BoardService.
func NewBoardService(c *BoardConfig) (*BoardService, error) {
	if c.Store == nil {
		return nil, ErrMissingStore
	}

	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}

	return &BoardService{
		store:       c.Store,
		history:     c.History,
		recorder:    c.Recorder,
		logger:      c.Logger,
		animation:   c.Animation,
		historySize: c.HistorySize,
		now:         time.Now,
	}, nil
}

// Create builds a new board of at least grid.MinRows x grid.MinCols with default endpoints.
func (b *BoardService) Create(ctx context.Context, rows, cols int) (*dmn.Board, error) {
	g, err := grid.NewDefault(rows, cols)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if err := b.store.Save(ctx, id, g); err != nil {
		b.logger.Error(fmt.Sprintf("saving new board: %s", err))
		return nil, err
	}

	b.logger.Info(fmt.Sprintf("created board %s (%dx%d)", id, g.Rows, g.Cols))
	return toBoard(id, g), nil
}

// Get returns the board's current layout.
func (b *BoardService) Get(ctx context.Context, id uuid.UUID) (*dmn.Board, error) {
	g, err := b.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBoard(id, g), nil
}

// Delete drops the board.
func (b *BoardService) Delete(ctx context.Context, id uuid.UUID) error {
	return b.withLock(ctx, id, func() error {
		if _, err := b.store.Load(ctx, id); err != nil {
			return err
		}
		return b.store.Delete(ctx, id)
	})
}

// Resize rebuilds the board with new dimensions, dropping its walls.
func (b *BoardService) Resize(ctx context.Context, id uuid.UUID, rows, cols int) (*dmn.Board, error) {
	return b.update(ctx, id, func(g *grid.Grid) error {
		return g.Resize(rows, cols)
	})
}

// SetWalls paints (wall=true) or erases walls on every given cell.
// Either all cells are changed or, on the first invalid cell, none are.
func (b *BoardService) SetWalls(ctx context.Context, id uuid.UUID, cells []grid.CellPosition, wall bool) (*dmn.Board, error) {
	return b.update(ctx, id, func(g *grid.Grid) error {
		for _, pos := range cells {
			cell, err := g.Cell(pos)
			if err != nil {
				return err
			}
			if cell.IsEndpoint() {
				return grid.ErrEndpointWall
			}
		}
		for _, pos := range cells {
			_ = g.SetWall(pos, wall)
		}
		return nil
	})
}

// MoveEndpoint moves the start or the finish marker.
func (b *BoardService) MoveEndpoint(ctx context.Context, id uuid.UUID, endpoint string, pos grid.CellPosition) (*dmn.Board, error) {
	var move func(*grid.Grid, grid.CellPosition) error
	switch endpoint {
	case EndpointStart:
		move = (*grid.Grid).MoveStart
	case EndpointFinish:
		move = (*grid.Grid).MoveFinish
	default:
		return nil, ErrUnknownEndpoint
	}

	return b.update(ctx, id, func(g *grid.Grid) error {
		return move(g, pos)
	})
}

// Clear removes every wall from the board.
func (b *BoardService) Clear(ctx context.Context, id uuid.UUID) (*dmn.Board, error) {
	return b.update(ctx, id, func(g *grid.Grid) error {
		g.ClearWalls()
		return nil
	})
}

// Replace swaps the board's layout for the given one.
func (b *BoardService) Replace(ctx context.Context, id uuid.UUID, layout grid.Layout) (*dmn.Board, error) {
	restored, err := grid.FromLayout(layout)
	if err != nil {
		return nil, err
	}

	return b.update(ctx, id, func(g *grid.Grid) error {
		*g = *restored
		return nil
	})
}

// Visualize runs the named algorithm on the board and schedules its animation.
// An empty name selects search.DefaultAlgorithm.
func (b *BoardService) Visualize(ctx context.Context, id uuid.UUID, algorithm string) (*dmn.Run, error) {
	if algorithm == "" {
		algorithm = search.DefaultAlgorithm
	}
	if _, err := search.Lookup(algorithm); err != nil {
		return nil, err
	}

	var run *dmn.Run
	err := b.withLock(ctx, id, func() error {
		g, err := b.store.Load(ctx, id)
		if err != nil {
			return err
		}

		began := b.now()
		result, err := search.Run(g, algorithm)
		if err != nil {
			return err
		}
		took := b.now().Sub(began)

		run = &dmn.Run{
			ID:        uuid.New(),
			BoardID:   id,
			Algorithm: algorithm,
			Visited:   positions(result.Visited),
			Path:      positions(result.Path),
			Timeline:  animation.Build(result.Visited, result.Path, b.animation),
			CreatedAt: began,
		}

		if b.recorder != nil {
			b.recorder.ObserveRun(algorithm, len(run.Visited), len(run.Path), took)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info(fmt.Sprintf("ran %s on board %s: visited=%d path=%d", algorithm, id, len(run.Visited), len(run.Path)))
	if b.history != nil {
		if err := b.history.Record(ctx, id, run.Summary()); err != nil {
			b.logger.Warning(fmt.Sprintf("recording run %s of board %s: %s", run.ID, id, err))
		}
	}

	return run, nil
}

// History returns the most recent runs of the board, newest first.
func (b *BoardService) History(ctx context.Context, id uuid.UUID) ([]dmn.RunSummary, error) {
	if _, err := b.store.Load(ctx, id); err != nil {
		return nil, err
	}
	if b.history == nil {
		return []dmn.RunSummary{}, nil
	}
	return b.history.Recent(ctx, id, b.historySize)
}

// update loads the board, applies f and saves the result under the board lock.
// Nothing is saved when f fails.
func (b *BoardService) update(ctx context.Context, id uuid.UUID, f func(*grid.Grid) error) (*dmn.Board, error) {
	var board *dmn.Board
	err := b.withLock(ctx, id, func() error {
		g, err := b.store.Load(ctx, id)
		if err != nil {
			return err
		}

		if err := f(g); err != nil {
			return err
		}

		if err := b.store.Save(ctx, id, g); err != nil {
			b.logger.Error(fmt.Sprintf("saving board %s: %s", id, err))
			return err
		}

		board = toBoard(id, g)
		return nil
	})

	return board, err
}

func (b *BoardService) withLock(ctx context.Context, id uuid.UUID, f func() error) error {
	unlock, err := b.store.Lock(ctx, id)
	if err != nil {
		b.logger.Error(fmt.Sprintf("locking board %s: %s", id, err))
		return err
	}
	defer unlock()

	return f()
}

func toBoard(id uuid.UUID, g *grid.Grid) *dmn.Board {
	return &dmn.Board{ID: id, Layout: g.Layout(), Render: g.String()}
}

func positions(cells []*grid.Cell) []grid.CellPosition {
	out := make([]grid.CellPosition, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Position())
	}
	return out
}

var _ i.BoardManager = &BoardService{}
