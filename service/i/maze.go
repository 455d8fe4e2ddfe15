package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// MazeCache stores generated mazes by key.
type MazeCache interface {
	// Get returns the cached maze, or false when the key is absent.
	Get(ctx context.Context, key string) (*maze.Description, bool, error)

	// Set stores the maze under key.
	Set(ctx context.Context, key string, d *maze.Description) error
}

// MazeGenerator produces mazes for the API and the progression service.
type MazeGenerator interface {
	Generate(ctx context.Context, cfg maze.Config) (*maze.Description, error)
}
