// Package boardapi exposes boards, searches and their animations over HTTP and websockets.
package boardapi

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// SizeRequest is used to create or resize a board.
type SizeRequest struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// WallsRequest paints or erases walls along a stroke.
type WallsRequest struct {
	Cells []grid.CellPosition `json:"cells" binding:"required"`
	Wall  bool                `json:"wall"`
}

// PositionRequest moves an endpoint.
type PositionRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// RunRequest selects the algorithm to visualize. Empty means the default.
type RunRequest struct {
	Algorithm string `json:"algorithm"`
}

// BoardResponse is the client view of a board.
type BoardResponse struct {
	ID     string              `json:"id"`
	Rows   int                 `json:"rows"`
	Cols   int                 `json:"cols"`
	Start  grid.CellPosition   `json:"start"`
	Finish grid.CellPosition   `json:"finish"`
	Walls  []grid.CellPosition `json:"walls"`
	Render string              `json:"render"`
}

// FrameResponse is one scheduled cell update.
type FrameResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	State string `json:"state"`
	AtMS  int64  `json:"at_ms"`
}

// RunResponse carries the raw search output and the animation schedule.
type RunResponse struct {
	ID         string              `json:"id"`
	Algorithm  string              `json:"algorithm"`
	Visited    []grid.CellPosition `json:"visited"`
	Path       []grid.CellPosition `json:"path"`
	Found      bool                `json:"found"`
	Frames     []FrameResponse     `json:"frames,omitempty"`
	DurationMS int64               `json:"duration_ms"`
}

// AlgorithmsResponse lists the algorithms a run can use.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}

// Websocket actions sent by the client.
const (
	ActionRun    = "run"
	ActionCancel = "cancel"
)

// Websocket message types sent by the server.
const (
	MessageRun       = "run"
	MessageFrame     = "frame"
	MessageDone      = "done"
	MessageCancelled = "cancelled"
	MessageError     = "error"
)

// StreamRequest is a client message on the stream.
type StreamRequest struct {
	Action    string `json:"action"`
	Algorithm string `json:"algorithm,omitempty"`
}

// StreamMessage is a server message on the stream.
// Only the field matching Type is set.
type StreamMessage struct {
	Type  string         `json:"type"`
	Run   *RunResponse   `json:"run,omitempty"`
	Frame *FrameResponse `json:"frame,omitempty"`
	Error string         `json:"error,omitempty"`
}

func newBoardResponse(b *dmn.Board) *BoardResponse {
	walls := b.Layout.Walls
	if walls == nil {
		walls = []grid.CellPosition{}
	}
	return &BoardResponse{
		ID:     b.ID.String(),
		Rows:   b.Layout.Rows,
		Cols:   b.Layout.Cols,
		Start:  b.Layout.Start,
		Finish: b.Layout.Finish,
		Walls:  walls,
		Render: b.Render,
	}
}

func newFrameResponse(f animation.Frame) *FrameResponse {
	return &FrameResponse{
		Row:   f.Row,
		Col:   f.Col,
		State: string(f.State),
		AtMS:  toMillis(f.At),
	}
}

func newRunResponse(r *dmn.Run) *RunResponse {
	frames := make([]FrameResponse, 0, len(r.Timeline.Frames))
	for _, f := range r.Timeline.Frames {
		frames = append(frames, *newFrameResponse(f))
	}

	return &RunResponse{
		ID:         r.ID.String(),
		Algorithm:  r.Algorithm,
		Visited:    r.Visited,
		Path:       r.Path,
		Found:      r.Found(),
		Frames:     frames,
		DurationMS: toMillis(r.Timeline.Duration()),
	}
}

func toMillis(d time.Duration) int64 {
	return d.Milliseconds()
}
