package search

import "github.com/beka-birhanu/vinom-pathfinder/grid"

// BreadthFirst explores the grid ring by ring from start using a FIFO frontier.
// A cell is visited when dequeued and the search stops once the finish is dequeued,
// so the back-references describe a path with the fewest possible edges.
func BreadthFirst(g *grid.Grid, start, finish *grid.Cell) []*grid.Cell {
	visited := make([]*grid.Cell, 0)

	start.Distance = 0
	queue := []*grid.Cell{start}

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		cell.IsVisited = true
		visited = append(visited, cell)
		if cell == finish {
			break
		}

		for _, nbr := range g.Neighbors(cell) {
			// Distance doubles as the discovered flag so a cell is queued once.
			if !open(nbr) || nbr.Distance != grid.Infinity {
				continue
			}
			nbr.Distance = cell.Distance + 1
			nbr.Previous = cell
			queue = append(queue, nbr)
		}
	}

	return visited
}
