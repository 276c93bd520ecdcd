package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	tokenLifetime = 24 * time.Hour

	// Claim keys carried by access tokens.
	ClaimUserID   = "userID"
	ClaimUsername = "username"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Auth registers users and signs them in with access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates a user with a hashed password.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return dmn.ErrUsernameTaken
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("registered user %s", user.ID))
	return nil
}

// SignIn verifies the credentials and returns the user with a fresh access token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimUserID:   user.ID.String(),
		ClaimUsername: user.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("generating token for user %s: %s", user.ID, err))
		return nil, "", err
	}

	return user, token, nil
}

var _ i.Authenticator = &Auth{}
