package animation

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantClock fires every timer immediately and records the requested waits.
type instantClock struct {
	waits []time.Duration
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func runBFS(t *testing.T) *search.Result {
	t.Helper()
	// S . F on a single open row plus a second row to explore.
	g, err := grid.New(2, 3, grid.CellPosition{Row: 0, Col: 0}, grid.CellPosition{Row: 0, Col: 2})
	require.NoError(t, err)
	result, err := search.Run(g, search.BFS)
	require.NoError(t, err)
	return result
}

func TestBuild(t *testing.T) {
	result := runBFS(t)
	// BFS from (0,0): (0,0) (1,0) (0,1) (1,1) (0,2)
	require.Len(t, result.Visited, 5)
	require.Len(t, result.Path, 3)

	timeline := Build(result.Visited, result.Path, DefaultOptions())

	t.Run("Visited wave keeps the slots of the endpoints", func(t *testing.T) {
		visited := timeline.Frames[:3]
		assert.Equal(t, Frame{Row: 1, Col: 0, State: StateVisited, At: 7 * time.Millisecond}, visited[0])
		assert.Equal(t, Frame{Row: 0, Col: 1, State: StateVisited, At: 14 * time.Millisecond}, visited[1])
		assert.Equal(t, Frame{Row: 1, Col: 1, State: StateVisited, At: 21 * time.Millisecond}, visited[2])
	})

	t.Run("Path wave starts after the visited wave", func(t *testing.T) {
		require.Len(t, timeline.Frames, 4)
		// Path slots: start at 35ms (skipped), (0,1) at 45ms, finish at 55ms (skipped).
		assert.Equal(t, Frame{Row: 0, Col: 1, State: StatePath, At: 45 * time.Millisecond}, timeline.Frames[3])
	})

	t.Run("Duration covers both waves", func(t *testing.T) {
		assert.Equal(t, 5*7*time.Millisecond+3*10*time.Millisecond, timeline.Duration())
	})

	t.Run("Custom pacing", func(t *testing.T) {
		custom := Build(result.Visited, result.Path, Options{VisitedDelay: time.Second, PathDelay: time.Minute})
		assert.Equal(t, time.Second, custom.Frames[0].At)
		assert.Equal(t, 5*time.Second+time.Minute, custom.Frames[3].At)
	})

	t.Run("Zero options fall back to defaults", func(t *testing.T) {
		assert.Equal(t, timeline, Build(result.Visited, result.Path, Options{}))
	})
}

func TestBuildUnreachable(t *testing.T) {
	g, err := grid.New(1, 3, grid.CellPosition{Row: 0, Col: 0}, grid.CellPosition{Row: 0, Col: 2})
	require.NoError(t, err)
	require.NoError(t, g.SetWall(grid.CellPosition{Row: 0, Col: 1}, true))

	result, err := search.Run(g, search.DFS)
	require.NoError(t, err)

	timeline := Build(result.Visited, result.Path, DefaultOptions())
	assert.Empty(t, timeline.Frames)
	assert.Equal(t, DefaultVisitedDelay, timeline.Duration())
}

func TestPlay(t *testing.T) {
	result := runBFS(t)
	timeline := Build(result.Visited, result.Path, DefaultOptions())

	t.Run("Applies every frame in order", func(t *testing.T) {
		clock := &instantClock{}
		var applied []Frame

		err := Play(context.Background(), timeline, clock, func(f Frame) { applied = append(applied, f) })
		require.NoError(t, err)

		assert.Equal(t, timeline.Frames, applied)
		assert.Equal(t, []time.Duration{
			7 * time.Millisecond,
			7 * time.Millisecond,
			7 * time.Millisecond,
			24 * time.Millisecond,
		}, clock.waits)
	})

	t.Run("Stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var applied []Frame

		err := Play(ctx, timeline, &instantClock{}, func(f Frame) {
			applied = append(applied, f)
			if len(applied) == 2 {
				cancel()
			}
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, applied, 2)
	})

	t.Run("Real clock", func(t *testing.T) {
		fast := Build(result.Visited, result.Path, Options{VisitedDelay: time.Microsecond, PathDelay: time.Microsecond})
		count := 0

		err := Play(context.Background(), fast, WallClock{}, func(Frame) { count++ })
		require.NoError(t, err)
		assert.Equal(t, len(fast.Frames), count)
	})
}
