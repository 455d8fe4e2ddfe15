package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/identity"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Standing is one leaderboard row.
type Standing struct {
	PlayerID uuid.UUID
	Level    int
}

// Ranking is a page of the leaderboard together with the number of ranked players.
type Ranking struct {
	Standings []Standing
	Total     int64
}

// Leaderboard ranks players by the highest level they reached.
type Leaderboard interface {
	// Record stores level for the player if it beats the recorded one.
	Record(ctx context.Context, playerID uuid.UUID, level int) error

	// Top returns up to n standings, best first.
	Top(ctx context.Context, n int64) ([]Standing, error)

	// Count returns the number of ranked players.
	Count(ctx context.Context) (int64, error)
}

// Locker hands out exclusive named locks.
type Locker interface {
	// Lock blocks until the lock is held or ctx is done. The returned func releases it.
	Lock(ctx context.Context, name string) (func() error, error)
}

// ProgressTracker drives a player through the levels.
type ProgressTracker interface {
	Current(ctx context.Context, playerID uuid.UUID) (*identity.Player, *maze.Description, error)
	Complete(ctx context.Context, playerID uuid.UUID) (*identity.Player, error)
	StartOver(ctx context.Context, playerID uuid.UUID) (*identity.Player, error)
	SetLevel(ctx context.Context, playerID uuid.UUID, level int) (*identity.Player, error)
	UseCustomSeed(ctx context.Context, playerID uuid.UUID, raw string) (*identity.Player, error)
	Leaderboard(ctx context.Context, n int64) (*Ranking, error)
}
