package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const maxLayoutNameLength = 64

var (
	ErrInvalidLayoutName = errors.New("layout name must be 1 to 64 characters")
)

// Layouts saves boards as named layouts and applies them back onto boards.
type Layouts struct {
	repo   i.LayoutRepo
	boards *BoardService
	logger i.Logger
	now    func() time.Time
}

// NewLayoutService creates a Layouts service on top of a board service.
func NewLayoutService(repo i.LayoutRepo, boards *BoardService, logger i.Logger) (*Layouts, error) {
	return &Layouts{
		repo:   repo,
		boards: boards,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Save stores the board's current layout under name, replacing an older one.
func (l *Layouts) Save(ctx context.Context, ownerID, boardID uuid.UUID, name string) (*dmn.SavedLayout, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxLayoutNameLength {
		return nil, ErrInvalidLayoutName
	}

	board, err := l.boards.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}

	saved := &dmn.SavedLayout{
		OwnerID:   ownerID,
		Name:      name,
		Layout:    board.Layout,
		UpdatedAt: l.now().UTC(),
	}
	if err := l.repo.Save(ctx, saved); err != nil {
		l.logger.Error(fmt.Sprintf("saving layout %q for user %s: %s", name, ownerID, err))
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("saved layout %q of board %s for user %s", name, boardID, ownerID))
	return saved, nil
}

// List returns the owner's layouts.
func (l *Layouts) List(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SavedLayout, error) {
	return l.repo.ByOwner(ctx, ownerID)
}

// Apply replaces the board's layout with the owner's saved layout.
func (l *Layouts) Apply(ctx context.Context, ownerID uuid.UUID, name string, boardID uuid.UUID) (*dmn.Board, error) {
	saved, err := l.repo.ByName(ctx, ownerID, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	return l.boards.Replace(ctx, boardID, saved.Layout)
}

var _ i.LayoutManager = &Layouts{}
