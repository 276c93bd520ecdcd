package animation

import (
	"context"
	"time"
)

// Clock provides the timers a playback waits on.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// WallClock is a Clock backed by the time package.
type WallClock struct{}

// After implements Clock.
func (WallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Play replays the timeline, calling apply for each frame once its offset has
// elapsed. Frames are applied in order on the calling goroutine.
// It returns ctx.Err() if the context is cancelled before the last frame.
func Play(ctx context.Context, t Timeline, clock Clock, apply func(Frame)) error {
	var elapsed time.Duration
	for _, frame := range t.Frames {
		if wait := frame.At - elapsed; wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-clock.After(wait):
			}
			elapsed = frame.At
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		apply(frame)
	}

	return nil
}
