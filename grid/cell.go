package grid

import "math"

// Infinity is the distance of a cell that no traversal has reached yet.
const Infinity = math.MaxInt

// Cell represents a single position on the grid together with its traversal state.
type Cell struct {
	Row       int   // Row index of the cell
	Col       int   // Column index of the cell
	IsStart   bool  // IsStart marks the cell the search starts from.
	IsFinish  bool  // IsFinish marks the cell the search is looking for.
	IsWall    bool  // IsWall marks a cell that can never be entered.
	IsVisited bool  // IsVisited is set once a traversal has explored the cell.
	Distance  int   // Distance from the start in edges, Infinity until reached.
	Previous  *Cell // Previous is the cell this one was reached from.
}

// Position returns the position of the cell.
func (c *Cell) Position() CellPosition {
	return CellPosition{Row: c.Row, Col: c.Col}
}

// IsEndpoint reports whether the cell is the start or the finish.
func (c *Cell) IsEndpoint() bool {
	return c.IsStart || c.IsFinish
}

// reset clears the traversal state, walls and endpoints are untouched.
func (c *Cell) reset() {
	c.IsVisited = false
	c.Distance = Infinity
	c.Previous = nil
}

// CellPosition represents the position of a cell in the grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Manhattan returns the Manhattan distance between two positions.
func (p CellPosition) Manhattan(o CellPosition) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
