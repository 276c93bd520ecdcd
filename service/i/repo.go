package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	Save(ctx context.Context, user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByUsername(ctx context.Context, username string) (*dmn.User, error)
}

// LayoutRepo persists named layouts per owner.
type LayoutRepo interface {
	// Save inserts or replaces the owner's layout with the same name.
	Save(ctx context.Context, layout *dmn.SavedLayout) error

	// ByName returns dmn.ErrLayoutNotFound if the owner has no layout with that name.
	ByName(ctx context.Context, ownerID uuid.UUID, name string) (*dmn.SavedLayout, error)

	// ByOwner lists the owner's layouts sorted by name.
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SavedLayout, error)
}
