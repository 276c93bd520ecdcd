package boardapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const writeTimeout = 2 * time.Second

var (
	ErrUnknownAction = errors.New("unknown action, expected run or cancel")
	ErrTooManyRuns   = errors.New("too many run requests, slow down")
	ErrBadMessage    = errors.New("malformed message")
)

// stream upgrades the request and replays runs of the board frame by frame.
func (c *Controller) stream(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}
	if _, err := c.boards.Get(ctx, id); err != nil {
		writeError(ctx, err)
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// The upgrader has already replied to the client.
		c.logger.Warning(fmt.Sprintf("upgrading stream of board %s: %s", id, err))
		return
	}

	s := &session{
		conn:    conn,
		boardID: id,
		boards:  c.boards,
		clock:   c.clock,
		limiter: rate.NewLimiter(c.runRate, c.runBurst),
		logger:  c.logger,
	}
	s.serve(ctx.Request.Context())
}

// playback is a running replay of one timeline.
type playback struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// session is one websocket connection. Only the read loop starts and stops
// playbacks; writes from the loop and the player are serialized by writeMu.
type session struct {
	conn    *websocket.Conn
	boardID uuid.UUID
	boards  i.BoardManager
	clock   animation.Clock
	limiter *rate.Limiter
	logger  i.Logger

	writeMu sync.Mutex
	current *playback
}

func (s *session) serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.stop()
		s.conn.Close()
	}()

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warning(fmt.Sprintf("reading stream of board %s: %s", s.boardID, err))
			}
			return
		}

		var request StreamRequest
		if err := json.Unmarshal(data, &request); err != nil {
			s.sendError(ErrBadMessage)
			continue
		}

		switch request.Action {
		case ActionRun:
			s.run(ctx, request.Algorithm)
		case ActionCancel:
			s.stop()
		default:
			s.sendError(ErrUnknownAction)
		}
	}
}

// run cancels the current playback, runs the search and starts replaying it.
func (s *session) run(ctx context.Context, algorithm string) {
	if !s.limiter.Allow() {
		s.sendError(ErrTooManyRuns)
		return
	}

	s.stop()

	run, err := s.boards.Visualize(ctx, s.boardID, algorithm)
	if err != nil {
		s.sendError(err)
		return
	}

	summary := newRunResponse(run)
	summary.Frames = nil
	if err := s.send(&StreamMessage{Type: MessageRun, Run: summary}); err != nil {
		return
	}

	playCtx, cancel := context.WithCancel(ctx)
	p := &playback{cancel: cancel, done: make(chan struct{})}
	s.current = p

	go func() {
		defer close(p.done)
		defer cancel()

		err := animation.Play(playCtx, run.Timeline, s.clock, func(f animation.Frame) {
			if err := s.send(&StreamMessage{Type: MessageFrame, Frame: newFrameResponse(f)}); err != nil {
				cancel()
			}
		})
		if err != nil {
			if ctx.Err() == nil {
				_ = s.send(&StreamMessage{Type: MessageCancelled})
			}
			return
		}
		_ = s.send(&StreamMessage{Type: MessageDone})
	}()
}

// stop cancels the current playback and waits for the player to exit.
func (s *session) stop() {
	if s.current == nil {
		return
	}
	s.current.cancel()
	<-s.current.done
	s.current = nil
}

func (s *session) send(msg *StreamMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(msg)
}

func (s *session) sendError(err error) {
	_ = s.send(&StreamMessage{Type: MessageError, Error: err.Error()})
}
