/*
Package animation turns the result of a search into a timed replay.

A Timeline holds one Frame per cell that changes its visual state. Visited cells
flip one after another at a fixed delay; once the whole visited wave has been
scheduled, the path wave starts and paints the route from start to finish.
The start and finish cells keep their slot in the schedule but never change.
*/
package animation

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

const (
	DefaultVisitedDelay = 7 * time.Millisecond
	DefaultPathDelay    = 10 * time.Millisecond
)

// State is the visual state a frame switches its cell to.
type State string

const (
	StateVisited State = "visited"
	StatePath    State = "path"
)

// Options controls the pacing of a timeline.
type Options struct {
	VisitedDelay time.Duration // Delay between two visited cells.
	PathDelay    time.Duration // Delay between two path cells.
}

// DefaultOptions returns the pacing used when no options are given.
func DefaultOptions() Options {
	return Options{VisitedDelay: DefaultVisitedDelay, PathDelay: DefaultPathDelay}
}

// Frame is a single scheduled visual update.
type Frame struct {
	Row   int
	Col   int
	State State
	At    time.Duration // Offset from the start of the playback.
}

// Timeline is an ordered list of frames plus the total playback time.
type Timeline struct {
	Frames   []Frame
	duration time.Duration
}

// Duration returns the time at which the last slot of the timeline ends.
func (t Timeline) Duration() time.Duration {
	return t.duration
}

// Build schedules the visited wave followed by the path wave.
// Zero delays in opts fall back to the defaults.
func Build(visited, path []*grid.Cell, opts Options) Timeline {
	if opts.VisitedDelay <= 0 {
		opts.VisitedDelay = DefaultVisitedDelay
	}
	if opts.PathDelay <= 0 {
		opts.PathDelay = DefaultPathDelay
	}

	frames := make([]Frame, 0, len(visited)+len(path))
	for i, cell := range visited {
		if cell.IsEndpoint() {
			continue
		}
		frames = append(frames, newFrame(cell, StateVisited, time.Duration(i)*opts.VisitedDelay))
	}

	pathBegin := time.Duration(len(visited)) * opts.VisitedDelay
	for i, cell := range path {
		if cell.IsEndpoint() {
			continue
		}
		frames = append(frames, newFrame(cell, StatePath, pathBegin+time.Duration(i)*opts.PathDelay))
	}

	return Timeline{
		Frames:   frames,
		duration: pathBegin + time.Duration(len(path))*opts.PathDelay,
	}
}

func newFrame(c *grid.Cell, s State, at time.Duration) Frame {
	return Frame{Row: c.Row, Col: c.Col, State: s, At: at}
}
