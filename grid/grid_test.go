package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Builds cells with fresh traversal state", func(t *testing.T) {
		g, err := New(3, 4, CellPosition{Row: 0, Col: 0}, CellPosition{Row: 2, Col: 3})
		require.NoError(t, err)

		assert.Equal(t, 3, g.Rows)
		assert.Equal(t, 4, g.Cols)
		for r, row := range g.Cells {
			require.Len(t, row, 4)
			for c, cell := range row {
				assert.Equal(t, CellPosition{Row: r, Col: c}, cell.Position())
				assert.Equal(t, Infinity, cell.Distance)
				assert.Nil(t, cell.Previous)
				assert.False(t, cell.IsVisited)
				assert.False(t, cell.IsWall)
			}
		}
		assert.True(t, g.Start().IsStart)
		assert.True(t, g.Finish().IsFinish)
		assert.Equal(t, CellPosition{Row: 2, Col: 3}, g.Finish().Position())
	})

	t.Run("Rejects invalid dimensions", func(t *testing.T) {
		_, err := New(0, 4, CellPosition{}, CellPosition{})
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = New(3, MaxDimension+1, CellPosition{}, CellPosition{})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Rejects endpoints outside the grid", func(t *testing.T) {
		_, err := New(3, 3, CellPosition{Row: 3, Col: 0}, CellPosition{})
		assert.ErrorIs(t, err, ErrOutOfBound)

		_, err = New(3, 3, CellPosition{}, CellPosition{Row: 0, Col: -1})
		assert.ErrorIs(t, err, ErrOutOfBound)
	})

	t.Run("Start and finish may coincide", func(t *testing.T) {
		g, err := New(2, 2, CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Same(t, g.Start(), g.Finish())
	})
}

func TestNewDefault(t *testing.T) {
	t.Run("Places endpoints on the middle row", func(t *testing.T) {
		g, err := NewDefault(20, 50)
		require.NoError(t, err)

		assert.Equal(t, CellPosition{Row: 10, Col: 10}, g.Start().Position())
		assert.Equal(t, CellPosition{Row: 10, Col: 40}, g.Finish().Position())
	})

	t.Run("Raises small sizes to the minimum", func(t *testing.T) {
		g, err := NewDefault(1, 1)
		require.NoError(t, err)

		assert.Equal(t, MinRows, g.Rows)
		assert.Equal(t, MinCols, g.Cols)
		assert.NotSame(t, g.Start(), g.Finish())
	})
}

func TestResize(t *testing.T) {
	g, err := NewDefault(5, 6)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{Row: 0, Col: 0}, true))

	require.NoError(t, g.Resize(10, 10))
	assert.Equal(t, 10, g.Rows)
	assert.Equal(t, 10, g.Cols)
	assert.Empty(t, g.Walls())
	assert.Same(t, g.Cells[5][2], g.Start())
	assert.Same(t, g.Cells[5][8], g.Finish())

	assert.ErrorIs(t, g.Resize(10, MaxDimension+1), ErrInvalidDimension)
	assert.Equal(t, 10, g.Cols, "a failed resize keeps the grid")
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3, CellPosition{}, CellPosition{Row: 2, Col: 2})
	require.NoError(t, err)

	t.Run("Inner cell has four neighbors in up, down, left, right order", func(t *testing.T) {
		got := positions(g.Neighbors(g.Cells[1][1]))
		assert.Equal(t, []CellPosition{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, got)
	})

	t.Run("Corner cell skips out of bound neighbors", func(t *testing.T) {
		got := positions(g.Neighbors(g.Cells[0][0]))
		assert.Equal(t, []CellPosition{{1, 0}, {0, 1}}, got)
	})
}

func TestWalls(t *testing.T) {
	g, err := New(3, 3, CellPosition{}, CellPosition{Row: 2, Col: 2})
	require.NoError(t, err)

	t.Run("Paint and erase", func(t *testing.T) {
		require.NoError(t, g.SetWall(CellPosition{Row: 1, Col: 1}, true))
		assert.True(t, g.Cells[1][1].IsWall)
		assert.Equal(t, []CellPosition{{1, 1}}, g.Walls())

		require.NoError(t, g.SetWall(CellPosition{Row: 1, Col: 1}, false))
		assert.Empty(t, g.Walls())
	})

	t.Run("Endpoints cannot become walls", func(t *testing.T) {
		assert.ErrorIs(t, g.SetWall(CellPosition{}, true), ErrEndpointWall)
		assert.ErrorIs(t, g.SetWall(CellPosition{Row: 2, Col: 2}, true), ErrEndpointWall)
		assert.False(t, g.Start().IsWall)
	})

	t.Run("Out of bound", func(t *testing.T) {
		assert.ErrorIs(t, g.SetWall(CellPosition{Row: 5, Col: 0}, true), ErrOutOfBound)
	})

	t.Run("Clear removes walls and traversal state", func(t *testing.T) {
		require.NoError(t, g.SetWall(CellPosition{Row: 0, Col: 1}, true))
		g.Cells[1][0].IsVisited = true
		g.Cells[1][0].Distance = 1
		g.Cells[1][0].Previous = g.Start()

		g.ClearWalls()
		assert.Empty(t, g.Walls())
		assert.False(t, g.Cells[1][0].IsVisited)
		assert.Equal(t, Infinity, g.Cells[1][0].Distance)
		assert.Nil(t, g.Cells[1][0].Previous)
	})
}

func TestMoveEndpoints(t *testing.T) {
	g, err := New(3, 3, CellPosition{}, CellPosition{Row: 2, Col: 2})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{Row: 1, Col: 1}, true))

	t.Run("Moving start onto a wall clears the wall", func(t *testing.T) {
		require.NoError(t, g.MoveStart(CellPosition{Row: 1, Col: 1}))
		assert.False(t, g.Cells[0][0].IsStart)
		assert.True(t, g.Cells[1][1].IsStart)
		assert.False(t, g.Cells[1][1].IsWall)
		assert.Same(t, g.Cells[1][1], g.Start())
	})

	t.Run("Moving finish", func(t *testing.T) {
		require.NoError(t, g.MoveFinish(CellPosition{Row: 0, Col: 2}))
		assert.False(t, g.Cells[2][2].IsFinish)
		assert.Same(t, g.Cells[0][2], g.Finish())
	})

	t.Run("Out of bound keeps the old endpoint", func(t *testing.T) {
		assert.ErrorIs(t, g.MoveFinish(CellPosition{Row: 3, Col: 3}), ErrOutOfBound)
		assert.Same(t, g.Cells[0][2], g.Finish())
		assert.True(t, g.Cells[0][2].IsFinish)
	})
}

func TestResetTraversal(t *testing.T) {
	g, err := New(2, 2, CellPosition{}, CellPosition{Row: 1, Col: 1})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{Row: 0, Col: 1}, true))
	g.Cells[1][1].IsVisited = true
	g.Cells[1][1].Distance = 2
	g.Cells[1][1].Previous = g.Cells[1][0]

	g.ResetTraversal()
	assert.False(t, g.Cells[1][1].IsVisited)
	assert.Equal(t, Infinity, g.Cells[1][1].Distance)
	assert.Nil(t, g.Cells[1][1].Previous)
	assert.True(t, g.Cells[0][1].IsWall, "walls persist")
	assert.True(t, g.Cells[1][1].IsFinish, "endpoints persist")
}

func TestLayout(t *testing.T) {
	g, err := New(4, 5, CellPosition{Row: 1, Col: 0}, CellPosition{Row: 3, Col: 4})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{Row: 0, Col: 2}, true))
	require.NoError(t, g.SetWall(CellPosition{Row: 2, Col: 3}, true))

	restored, err := FromLayout(g.Layout())
	require.NoError(t, err)
	assert.Equal(t, g.Layout(), restored.Layout())

	bad := g.Layout()
	bad.Walls = append(bad.Walls, bad.Start)
	_, err = FromLayout(bad)
	assert.ErrorIs(t, err, ErrEndpointWall)
}

func TestString(t *testing.T) {
	g, err := New(2, 3, CellPosition{}, CellPosition{Row: 1, Col: 2})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{Row: 0, Col: 1}, true))
	g.Cells[1][0].IsVisited = true
	g.Cells[1][0].Previous = g.Start()
	g.Cells[1][1].IsVisited = true
	g.Cells[1][1].Previous = g.Cells[1][0]
	g.Finish().Previous = g.Cells[1][1]
	g.Cells[0][2].IsVisited = true

	want := "+---+\n" +
		"|S#.|\n" +
		"|**F|\n" +
		"+---+\n"
	assert.Equal(t, want, g.String())
}

func positions(cells []*Cell) []CellPosition {
	out := make([]CellPosition, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Position())
	}
	return out
}
