// Package cache keeps generated mazes in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/redis/go-redis/v9"
)

// RedisMazeCache stores mazes as JSON with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) *RedisMazeCache {
	return &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the maze stored under key. A missing key is not an error.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*maze.Description, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var d maze.Description
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false, err
	}
	return &d, true, nil
}

// Set stores the maze under key and refreshes its TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, d *maze.Description) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
