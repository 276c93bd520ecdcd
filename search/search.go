// Package search implements the graph searches that run over a grid.
//
// Every algorithm receives the grid plus the start and finish cells, returns
// the cells in the order they were visited and leaves a back-reference on each
// reached cell so ShortestPath can walk from the finish back to the start.
package search

import (
	"errors"
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Algorithm names accepted by Lookup and Run.
const (
	BFS      = "bfs"
	DFS      = "dfs"
	Dijkstra = "dijkstra"

	DefaultAlgorithm = BFS
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	algorithms = map[string]Algorithm{
		BFS:      BreadthFirst,
		DFS:      DepthFirst,
		Dijkstra: UniformDijkstra,
	}
)

// Algorithm traverses g from start until finish is visited or the reachable
// area is exhausted, returning the cells in visitation order.
type Algorithm func(g *grid.Grid, start, finish *grid.Cell) []*grid.Cell

// Result is the outcome of a single search.
type Result struct {
	Algorithm string
	Visited   []*grid.Cell // Cells in the order they were visited.
	Path      []*grid.Cell // Cells from start to finish, empty if the finish is unreachable.
}

// Found reports whether the search reached the finish.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	algorithm, ok := algorithms[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return algorithm, nil
}

// Run resets the grid's traversal state, runs the named algorithm from the
// grid's start to its finish and reconstructs the path.
func Run(g *grid.Grid, name string) (*Result, error) {
	algorithm, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	g.ResetTraversal()
	visited := algorithm(g, g.Start(), g.Finish())

	return &Result{
		Algorithm: name,
		Visited:   visited,
		Path:      ShortestPath(g.Finish()),
	}, nil
}

// ShortestPath walks the back-references from finish to the start and returns
// the cells in start to finish order. A finish that was never reached yields
// an empty path; a finish that is also the start yields just that cell.
func ShortestPath(finish *grid.Cell) []*grid.Cell {
	if finish.Previous == nil && !finish.IsStart {
		return []*grid.Cell{}
	}

	path := make([]*grid.Cell, 0)
	for cell := finish; cell != nil; cell = cell.Previous {
		path = append(path, cell)
	}
	slices.Reverse(path)

	return path
}

// open reports whether a traversal may enter the cell.
func open(c *grid.Cell) bool {
	return !c.IsWall && !c.IsVisited
}
