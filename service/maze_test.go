package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeCacheKey(t *testing.T) {
	assert.Equal(t, "maze:10x12:12345:topRight", MazeCacheKey(maze.Config{Columns: 10, Rows: 12, Seed: 12345}))
	assert.Equal(t, "maze:3x3:-1:topRight,topLeft", MazeCacheKey(maze.Config{
		Columns: 3, Rows: 3, Seed: -1,
		ExitCorners: []maze.ExitCorner{maze.TopLeft, maze.TopRight},
	}))
}

func TestMazeServiceGenerate(t *testing.T) {
	ctx := context.Background()
	cache := newFakeMazeCache()
	svc, err := NewMazeService(&MazeServiceConfig{Cache: cache, Logger: &fakeLogger{}})
	require.NoError(t, err)

	cfg := maze.Config{Columns: 10, Rows: 10, Seed: 12345}
	first, err := svc.Generate(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Generate(ctx, cfg)
	require.NoError(t, err)
	assert.Same(t, first, second, "second call must come from the cache")
	assert.Equal(t, 1, cache.sets)

	direct, err := maze.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, direct.Lines(), first.Lines())
}

func TestMazeServiceRejectsBadConfigs(t *testing.T) {
	cache := newFakeMazeCache()
	svc, err := NewMazeService(&MazeServiceConfig{Cache: cache, Logger: &fakeLogger{}, MaxDimension: 50})
	require.NoError(t, err)

	for _, cfg := range []maze.Config{
		{Columns: 0, Rows: 5},
		{Columns: 51, Rows: 5},
		{Columns: 5, Rows: 51},
	} {
		d, err := svc.Generate(context.Background(), cfg)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, maze.ErrInvalidParameters)
	}
	assert.Zero(t, cache.gets, "invalid configs must not reach the cache")
}

func TestMazeServiceSurvivesCacheFailures(t *testing.T) {
	cache := newFakeMazeCache()
	cache.getErr = errors.New("redis timeout")
	cache.setErr = errors.New("redis timeout")
	logger := &fakeLogger{}
	svc, err := NewMazeService(&MazeServiceConfig{Cache: cache, Logger: logger})
	require.NoError(t, err)

	d, err := svc.Generate(context.Background(), maze.Config{Columns: 4, Rows: 4, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, 9, d.Width())
	assert.Len(t, logger.lines, 3, "read warning, debug line and write warning")
}

func TestMazeServiceWithoutCache(t *testing.T) {
	svc, err := NewMazeService(&MazeServiceConfig{Logger: &fakeLogger{}})
	require.NoError(t, err)

	d, err := svc.Generate(context.Background(), maze.Config{Columns: 2, Rows: 2, Seed: 2})
	require.NoError(t, err)
	assert.NotNil(t, d)

	_, err = NewMazeService(&MazeServiceConfig{})
	assert.Error(t, err)
}
