package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	progressLockKeyFmt = "progress:%s:lock"

	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// ErrProgressBusy is returned when another request holds the player's progress lock.
var ErrProgressBusy = errors.New("progress is being updated")

// ProgressConfig holds the collaborators of a ProgressService.
type ProgressConfig struct {
	Players      i.PlayerRepo
	Mazes        i.MazeGenerator
	Leaderboard  i.Leaderboard
	Locker       i.Locker
	Seeds        identity.SeedSource // Optional; defaults to a time seeded stream
	Logger       i.Logger
	MaxDimension int // Largest maze served; bounds the last level. Defaults to 200 like MazeService
}

// ProgressService moves players through the levels and hands out their mazes.
type ProgressService struct {
	players     i.PlayerRepo
	mazes       i.MazeGenerator
	leaderboard i.Leaderboard
	locker      i.Locker
	seeds       identity.SeedSource
	logger      i.Logger
	maxLevel    int
}

// lockedSource serializes draws from a SeedSource shared by concurrent requests.
type lockedSource struct {
	src identity.SeedSource
	sync.Mutex
}

func (l *lockedSource) Range(low, high int) int {
	l.Lock()
	defer l.Unlock()
	return l.src.Range(low, high)
}

// NewProgressService creates a ProgressService from c.
func NewProgressService(c *ProgressConfig) (*ProgressService, error) {
	if c == nil || c.Players == nil || c.Mazes == nil || c.Leaderboard == nil || c.Locker == nil || c.Logger == nil {
		return nil, errors.New("progress service is missing a collaborator")
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}
	if identity.MaxLevel(maxDimension) < 0 {
		return nil, fmt.Errorf("max dimension %d is below the level 0 size %d", maxDimension, identity.BaseDimension)
	}

	seeds := c.Seeds
	if seeds == nil {
		seeds = maze.NewRandom(int32(time.Now().UnixNano()))
	}

	return &ProgressService{
		players:     c.Players,
		mazes:       c.Mazes,
		leaderboard: c.Leaderboard,
		locker:      c.Locker,
		seeds:       &lockedSource{src: seeds},
		logger:      c.Logger,
		maxLevel:    identity.MaxLevel(maxDimension),
	}, nil
}

// Current returns the player and the maze of their current level.
// A seed is drawn and saved the first time a level is requested.
func (s *ProgressService) Current(ctx context.Context, playerID uuid.UUID) (*identity.Player, *maze.Description, error) {
	player, err := s.update(ctx, playerID, func(p *identity.Player) (bool, error) {
		return p.EnsureSeed(s.seeds), nil
	})
	if err != nil {
		return nil, nil, err
	}

	d, err := s.mazes.Generate(ctx, player.MazeConfig())
	if err != nil {
		return nil, nil, err
	}
	return player, d, nil
}

// Complete finishes the current level: the player moves up one level with a fresh seed.
func (s *ProgressService) Complete(ctx context.Context, playerID uuid.UUID) (*identity.Player, error) {
	player, err := s.update(ctx, playerID, func(p *identity.Player) (bool, error) {
		if err := p.CompleteLevel(s.seeds, s.maxLevel); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Level completed: ID=%s Level=%d", player.ID, player.Level))
	if err := s.leaderboard.Record(ctx, player.ID, player.Level); err != nil {
		s.logger.Warning(fmt.Sprintf("Recording leaderboard for %s: %s", player.ID, err))
	}
	return player, nil
}

// StartOver resets the player to level 0.
func (s *ProgressService) StartOver(ctx context.Context, playerID uuid.UUID) (*identity.Player, error) {
	return s.update(ctx, playerID, func(p *identity.Player) (bool, error) {
		p.StartOver()
		return true, nil
	})
}

// SetLevel moves the player to level. Levels past the last one are rejected with
// identity.ErrInvalidLevel.
func (s *ProgressService) SetLevel(ctx context.Context, playerID uuid.UUID, level int) (*identity.Player, error) {
	return s.update(ctx, playerID, func(p *identity.Player) (bool, error) {
		return true, p.SetLevel(level, s.maxLevel)
	})
}

// UseCustomSeed replaces the seed of the current level with a 5 digit seed chosen by the player.
func (s *ProgressService) UseCustomSeed(ctx context.Context, playerID uuid.UUID, raw string) (*identity.Player, error) {
	seed, err := identity.ParseCustomSeed(raw)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, playerID, func(p *identity.Player) (bool, error) {
		p.UseSeed(seed)
		return true, nil
	})
}

// Leaderboard returns the best n standings and the number of ranked players.
// n is clamped to [1, 100]; 0 means 10.
func (s *ProgressService) Leaderboard(ctx context.Context, n int64) (*i.Ranking, error) {
	switch {
	case n <= 0:
		n = defaultLeaderboardSize
	case n > maxLeaderboardSize:
		n = maxLeaderboardSize
	}

	standings, err := s.leaderboard.Top(ctx, n)
	if err != nil {
		return nil, err
	}
	total, err := s.leaderboard.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &i.Ranking{Standings: standings, Total: total}, nil
}

// update loads the player under its progress lock, applies fn and saves the
// player when fn reports a change.
func (s *ProgressService) update(ctx context.Context, playerID uuid.UUID, fn func(*identity.Player) (bool, error)) (*identity.Player, error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(progressLockKeyFmt, playerID))
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Obtaining progress lock for %s: %s", playerID, err))
		return nil, ErrProgressBusy
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warning(fmt.Sprintf("Releasing progress lock for %s: %s", playerID, err))
		}
	}()

	player, err := s.players.ByID(playerID)
	if err != nil {
		return nil, err
	}

	changed, err := fn(player)
	if err != nil {
		return nil, err
	}
	if !changed {
		return player, nil
	}

	if err := s.players.Save(player); err != nil {
		s.logger.Error(fmt.Sprintf("Saving progress for %s: %s", playerID, err))
		return nil, err
	}
	return player, nil
}
