package layoutapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller serves the saved layout routes.
type Controller struct {
	layouts i.LayoutManager
}

// NewController creates a layout Controller.
func NewController(l i.LayoutManager) (*Controller, error) {
	return &Controller{layouts: l}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	layouts := route.Group("/layouts")
	{
		layouts.POST("", c.save)
		layouts.GET("", c.list)
		layouts.POST("/:name/apply", c.apply)
	}
}

func (c *Controller) save(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request SaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	boardID, err := uuid.Parse(request.BoardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return
	}

	saved, err := c.layouts.Save(ctx, owner, boardID, request.Name)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newLayoutResponse(saved))
}

func (c *Controller) list(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	saved, err := c.layouts.List(ctx, owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing layouts"})
		return
	}

	response := make([]LayoutResponse, 0, len(saved))
	for _, l := range saved {
		response = append(response, newLayoutResponse(l))
	}
	ctx.JSON(http.StatusOK, gin.H{"layouts": response})
}

func (c *Controller) apply(ctx *gin.Context) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request ApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	boardID, err := uuid.Parse(request.BoardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return
	}

	board, err := c.layouts.Apply(ctx, owner, ctx.Param("name"), boardID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":     board.ID.String(),
		"layout": board.Layout,
		"render": board.Render,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrBoardNotFound), errors.Is(err, dmn.ErrLayoutNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidLayoutName),
		errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, grid.ErrOutOfBound),
		errors.Is(err, grid.ErrEndpointWall):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
