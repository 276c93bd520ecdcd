// Package layoutapi lets signed in users keep named board layouts.
package layoutapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// SaveRequest stores a board under a name.
type SaveRequest struct {
	BoardID string `json:"board_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// ApplyRequest loads a layout into a board.
type ApplyRequest struct {
	BoardID string `json:"board_id" binding:"required"`
}

// LayoutResponse is a saved layout.
type LayoutResponse struct {
	Name      string      `json:"name"`
	Layout    grid.Layout `json:"layout"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func newLayoutResponse(l *dmn.SavedLayout) LayoutResponse {
	return LayoutResponse{Name: l.Name, Layout: l.Layout, UpdatedAt: l.UpdatedAt}
}
