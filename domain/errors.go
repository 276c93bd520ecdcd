package domain

import "errors"

// Errors shared between the services and the stores backing them.
var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrLayoutNotFound = errors.New("layout not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameTaken  = errors.New("username conflict")
)
