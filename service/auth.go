package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers players and issues their tokens.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
	logger     i.Logger
}

// NewAuthService creates an Auth backed by the given repository and tokenizer.
func NewAuthService(playerRepo i.PlayerRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if playerRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("auth service requires a repository, a tokenizer and a logger")
	}
	return &Auth{
		playerRepo: playerRepo,
		tokenizer:  tokenizer,
		logger:     logger,
	}, nil
}

// Register creates a player at level 0.
func (a *Auth) Register(username, password string) error {
	if _, err := a.playerRepo.ByUsername(username); err == nil {
		return i.ErrUsernameTaken
	} else if !errors.Is(err, i.ErrPlayerNotFound) {
		return err
	}

	player, err := identity.NewPlayer(identity.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.playerRepo.Save(player); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Player registered: ID=%s Username=%s", player.ID, player.Username))
	return nil
}

// SignIn verifies the credentials and returns the player with a token valid for a day.
func (a *Auth) SignIn(username, password string) (*identity.Player, string, error) {
	player, err := a.playerRepo.ByUsername(username)
	if err != nil {
		if !errors.Is(err, i.ErrPlayerNotFound) {
			a.logger.Error(fmt.Sprintf("Loading player %s: %s", username, err))
		}
		return nil, "", ErrInvalidCredentials
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   player.ID.String(),
		"username": player.Username,
	}, tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}
