package grid

// Layout is the user-editable part of a grid: its size, endpoints and walls.
// Traversal state is never part of a layout.
type Layout struct {
	Rows   int            `json:"rows" bson:"rows"`
	Cols   int            `json:"cols" bson:"cols"`
	Start  CellPosition   `json:"start" bson:"start"`
	Finish CellPosition   `json:"finish" bson:"finish"`
	Walls  []CellPosition `json:"walls" bson:"walls"`
}

// Layout returns a snapshot of the grid's layout.
func (g *Grid) Layout() Layout {
	return Layout{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Start:  g.start.Position(),
		Finish: g.finish.Position(),
		Walls:  g.Walls(),
	}
}

// FromLayout rebuilds a grid from a layout snapshot.
// Walls placed on an endpoint are rejected with ErrEndpointWall.
func FromLayout(l Layout) (*Grid, error) {
	g, err := New(l.Rows, l.Cols, l.Start, l.Finish)
	if err != nil {
		return nil, err
	}

	for _, pos := range l.Walls {
		if err := g.SetWall(pos, true); err != nil {
			return nil, err
		}
	}

	return g, nil
}
