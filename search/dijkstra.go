package search

import (
	"container/heap"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// edgeWeight is the cost of every move; the grid is unweighted.
const edgeWeight = 1

// UniformDijkstra runs Dijkstra's algorithm with every edge weighing one.
// The unvisited cell with the smallest distance is visited next, ties going to
// the cell discovered first, which makes the visitation order match BreadthFirst.
func UniformDijkstra(g *grid.Grid, start, finish *grid.Cell) []*grid.Cell {
	visited := make([]*grid.Cell, 0)

	start.Distance = 0
	frontier := &distanceQueue{}
	heap.Push(frontier, &entry{cell: start})

	for frontier.Len() > 0 {
		cell := heap.Pop(frontier).(*entry).cell
		if cell.IsVisited {
			continue
		}

		cell.IsVisited = true
		visited = append(visited, cell)
		if cell == finish {
			break
		}

		for _, nbr := range g.Neighbors(cell) {
			if !open(nbr) {
				continue
			}
			if d := cell.Distance + edgeWeight; d < nbr.Distance {
				nbr.Distance = d
				nbr.Previous = cell
				heap.Push(frontier, &entry{cell: nbr, distance: d, seq: frontier.next()})
			}
		}
	}

	return visited
}

// entry is a frontier item. distance is captured at push time so stale entries
// left behind by a later improvement keep a consistent heap order.
type entry struct {
	cell     *grid.Cell
	distance int
	seq      int
}

// distanceQueue is a min-heap of entries ordered by distance then discovery.
type distanceQueue struct {
	items []*entry
	seq   int
}

func (q *distanceQueue) next() int {
	q.seq++
	return q.seq
}

func (q *distanceQueue) Len() int { return len(q.items) }

func (q *distanceQueue) Less(i, j int) bool {
	if q.items[i].distance != q.items[j].distance {
		return q.items[i].distance < q.items[j].distance
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *distanceQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *distanceQueue) Push(x any) { q.items = append(q.items, x.(*entry)) }

func (q *distanceQueue) Pop() any {
	last := len(q.items) - 1
	item := q.items[last]
	q.items[last] = nil
	q.items = q.items[:last]
	return item
}
