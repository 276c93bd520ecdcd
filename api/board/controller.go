package boardapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/animation"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	defaultRunsPerSecond = 2
	defaultRunBurst      = 4
)

var (
	ErrMissingBoards = errors.New("board manager is required")
	ErrInvalidID     = errors.New("invalid board id")
)

// Config holds the dependencies of a Controller.
type Config struct {
	Boards i.BoardManager
	Logger i.Logger
	Clock  animation.Clock // Paces stream playback, WallClock when nil.

	// Run requests accepted per second on one stream, and the burst above it.
	RunRate  rate.Limit
	RunBurst int
}

// Controller serves the board routes and the animation stream.
type Controller struct {
	boards   i.BoardManager
	logger   i.Logger
	clock    animation.Clock
	runRate  rate.Limit
	runBurst int
	upgrader websocket.Upgrader
}

// NewController creates a board Controller.
func NewController(c *Config) (*Controller, error) {
	if c.Boards == nil {
		return nil, ErrMissingBoards
	}
	if c.Clock == nil {
		c.Clock = animation.WallClock{}
	}
	if c.RunRate <= 0 {
		c.RunRate = defaultRunsPerSecond
	}
	if c.RunBurst <= 0 {
		c.RunBurst = defaultRunBurst
	}

	return &Controller{
		boards:   c.Boards,
		logger:   c.Logger,
		clock:    c.Clock,
		runRate:  c.RunRate,
		runBurst: c.RunBurst,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 5 * time.Second,
		},
	}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", c.algorithms)

	boards := route.Group("/boards")
	{
		boards.POST("", c.create)
		boards.GET("/:ID", c.get)
		boards.DELETE("/:ID", c.delete)
		boards.PUT("/:ID/size", c.resize)
		boards.POST("/:ID/walls", c.walls)
		boards.PUT("/:ID/endpoints/:kind", c.moveEndpoint)
		boards.POST("/:ID/clear", c.clear)
		boards.POST("/:ID/runs", c.run)
		boards.GET("/:ID/runs", c.history)
		boards.GET("/:ID/stream", c.stream)
	}
}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {}

func (c *Controller) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{
		Algorithms: search.Names(),
		Default:    search.DefaultAlgorithm,
	})
}

func (c *Controller) create(ctx *gin.Context) {
	var request SizeRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	board, err := c.boards.Create(ctx, request.Rows, request.Cols)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBoardResponse(board))
}

func (c *Controller) get(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	board, err := c.boards.Get(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBoardResponse(board))
}

func (c *Controller) delete(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	if err := c.boards.Delete(ctx, id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) resize(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request SizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.respondBoard(ctx, func() (*dmn.Board, error) {
		return c.boards.Resize(ctx, id, request.Rows, request.Cols)
	})
}

func (c *Controller) walls(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request WallsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.respondBoard(ctx, func() (*dmn.Board, error) {
		return c.boards.SetWalls(ctx, id, request.Cells, request.Wall)
	})
}

func (c *Controller) moveEndpoint(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request PositionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos := grid.CellPosition{Row: *request.Row, Col: *request.Col}
	c.respondBoard(ctx, func() (*dmn.Board, error) {
		return c.boards.MoveEndpoint(ctx, id, ctx.Param("kind"), pos)
	})
}

func (c *Controller) clear(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	c.respondBoard(ctx, func() (*dmn.Board, error) {
		return c.boards.Clear(ctx, id)
	})
}

func (c *Controller) run(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request RunRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	run, err := c.boards.Visualize(ctx, id, request.Algorithm)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRunResponse(run))
}

func (c *Controller) history(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	runs, err := c.boards.History(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (c *Controller) respondBoard(ctx *gin.Context, f func() (*dmn.Board, error)) {
	board, err := f()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(board))
}

func boardID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidID.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service errors to a status code.
func writeError(ctx *gin.Context, err error) {
	ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, grid.ErrOutOfBound),
		errors.Is(err, grid.ErrEndpointWall),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrUnknownEndpoint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
