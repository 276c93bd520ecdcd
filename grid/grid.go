/*
Package grid provides the rectangular board the pathfinding algorithms run on.

It defines the `Grid` structure, composed of `Cell` objects carrying wall and
endpoint flags plus the traversal state (visited flag, distance and the
back-reference used for path reconstruction).

A grid always has exactly one start and one finish cell, and neither of them is
ever a wall. Walls and endpoints survive between searches while the traversal
state is reset before each run.
*/
package grid

import (
	"errors"
	"strings"
)

const (
	// MaxDimension bounds both the rows and the columns of a grid.
	MaxDimension = 200

	// MinRows and MinCols are the smallest board NewDefault will build.
	MinRows = 5
	MinCols = 6
)

var (
	// Directions lists the axis-aligned moves in expansion order: up, down, left, right.
	Directions = []CellPosition{
		{Row: -1, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
	}

	ErrInvalidDimension = errors.New("invalid grid dimensions")
	ErrOutOfBound       = errors.New("position is out of the grid")
	ErrEndpointWall     = errors.New("start and finish cells cannot be walls")
)

// Grid represents a rectangular board of cells with a start and a finish.
type Grid struct {
	Rows   int       // Number of rows
	Cols   int       // Number of columns
	Cells  [][]*Cell // 2D grid of cells, indexed [row][col]
	start  *Cell
	finish *Cell
}

// New builds a grid of the given dimensions with the start and finish at the given positions.
func New(rows, cols int, start, finish CellPosition) (*Grid, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, ErrInvalidDimension
	}

	g := &Grid{Rows: rows, Cols: cols}
	if !g.InBound(start.Row, start.Col) || !g.InBound(finish.Row, finish.Col) {
		return nil, ErrOutOfBound
	}

	g.build(start, finish)
	return g, nil
}

// NewDefault builds a grid with the endpoints placed on the middle row,
// the start at a fifth of the width and the finish at four fifths.
// Dimensions smaller than MinRows x MinCols are raised to the minimum.
func NewDefault(rows, cols int) (*Grid, error) {
	rows, cols = max(rows, MinRows), max(cols, MinCols)
	start, finish := defaultEndpoints(rows, cols)
	return New(rows, cols, start, finish)
}

// Resize rebuilds the grid with new dimensions.
// Walls are dropped and the endpoints move to their default positions.
func (g *Grid) Resize(rows, cols int) error {
	resized, err := NewDefault(rows, cols)
	if err != nil {
		return err
	}

	*g = *resized
	return nil
}

func defaultEndpoints(rows, cols int) (CellPosition, CellPosition) {
	mid := rows / 2
	return CellPosition{Row: mid, Col: cols / 5}, CellPosition{Row: mid, Col: cols * 4 / 5}
}

func (g *Grid) build(start, finish CellPosition) {
	g.Cells = make([][]*Cell, g.Rows)
	for row := range g.Cells {
		g.Cells[row] = make([]*Cell, g.Cols)
		for col := range g.Cells[row] {
			g.Cells[row][col] = &Cell{Row: row, Col: col, Distance: Infinity}
		}
	}

	g.start = g.Cells[start.Row][start.Col]
	g.start.IsStart = true
	g.finish = g.Cells[finish.Row][finish.Col]
	g.finish.IsFinish = true
}

// InBound reports whether the position lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Cell returns the cell at the given position.
func (g *Grid) Cell(pos CellPosition) (*Cell, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return nil, ErrOutOfBound
	}
	return g.Cells[pos.Row][pos.Col], nil
}

// Start returns the start cell.
func (g *Grid) Start() *Cell {
	return g.start
}

// Finish returns the finish cell.
func (g *Grid) Finish() *Cell {
	return g.finish
}

// Neighbors returns the in-bound neighbors of c in Directions order.
// Walls and visited cells are included; filtering is up to the caller.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	result := make([]*Cell, 0, len(Directions))
	for _, delta := range Directions {
		row, col := c.Row+delta.Row, c.Col+delta.Col
		if g.InBound(row, col) {
			result = append(result, g.Cells[row][col])
		}
	}
	return result
}

// SetWall paints (wall=true) or erases (wall=false) a wall.
func (g *Grid) SetWall(pos CellPosition, wall bool) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}

	if cell.IsEndpoint() {
		return ErrEndpointWall
	}

	cell.IsWall = wall
	return nil
}

// MoveStart moves the start marker. A wall under the new position is removed.
func (g *Grid) MoveStart(pos CellPosition) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}

	g.start.IsStart = false
	cell.IsStart = true
	cell.IsWall = false
	g.start = cell
	return nil
}

// MoveFinish moves the finish marker. A wall under the new position is removed.
func (g *Grid) MoveFinish(pos CellPosition) error {
	cell, err := g.Cell(pos)
	if err != nil {
		return err
	}

	g.finish.IsFinish = false
	cell.IsFinish = true
	cell.IsWall = false
	g.finish = cell
	return nil
}

// ClearWalls removes every wall and resets the traversal state.
func (g *Grid) ClearWalls() {
	g.each(func(c *Cell) {
		c.IsWall = false
		c.reset()
	})
}

// ResetTraversal forgets the result of the previous search.
func (g *Grid) ResetTraversal() {
	g.each(func(c *Cell) { c.reset() })
}

// Walls returns the positions of all walls in row-major order.
func (g *Grid) Walls() []CellPosition {
	walls := make([]CellPosition, 0)
	g.each(func(c *Cell) {
		if c.IsWall {
			walls = append(walls, c.Position())
		}
	})
	return walls
}

func (g *Grid) each(f func(*Cell)) {
	for _, row := range g.Cells {
		for _, cell := range row {
			f(cell)
		}
	}
}

// String provides a textual representation of the grid.
//
//	S start, F finish, # wall, * cell on the path to the finish,
//	. visited cell, blank for anything else.
func (g *Grid) String() string {
	onPath := make(map[*Cell]struct{})
	if g.finish.Previous != nil {
		for c := g.finish.Previous; c != nil && !c.IsStart; c = c.Previous {
			onPath[c] = struct{}{}
		}
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("-", g.Cols) + "+\n")
	for _, row := range g.Cells {
		sb.WriteByte('|')
		for _, cell := range row {
			_, path := onPath[cell]
			switch {
			case cell.IsStart:
				sb.WriteByte('S')
			case cell.IsFinish:
				sb.WriteByte('F')
			case cell.IsWall:
				sb.WriteByte('#')
			case path:
				sb.WriteByte('*')
			case cell.IsVisited:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", g.Cols) + "+\n")

	return sb.String()
}
