package search

import "github.com/beka-birhanu/vinom-pathfinder/grid"

// frame is a stack entry: the cell to visit and the cell that pushed it.
type frame struct {
	cell *grid.Cell
	from *grid.Cell
}

// DepthFirst explores one branch at a time to completion before backtracking.
// A cell is visited when popped and its back-reference points at the cell that
// pushed it. The path it leaves behind is a valid route, not a shortest one.
func DepthFirst(g *grid.Grid, start, finish *grid.Cell) []*grid.Cell {
	visited := make([]*grid.Cell, 0)
	stack := []frame{{cell: start}}

	for len(stack) > 0 {
		top := pop(&stack)
		cell := top.cell
		if cell.IsVisited {
			continue
		}

		cell.IsVisited = true
		cell.Previous = top.from
		if top.from != nil {
			cell.Distance = top.from.Distance + 1
		} else {
			cell.Distance = 0
		}
		visited = append(visited, cell)
		if cell == finish {
			break
		}

		// Push in reverse so the first direction ends up on top of the stack.
		neighbors := g.Neighbors(cell)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if open(neighbors[i]) {
				stack = append(stack, frame{cell: neighbors[i], from: cell})
			}
		}
	}

	return visited
}

// pop removes and returns the last element of the stack.
func pop(s *[]frame) frame {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
