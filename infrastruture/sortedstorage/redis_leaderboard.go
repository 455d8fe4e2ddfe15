package sortedstorage

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLeaderboardKey = "leaderboard:levels"

// RedisLeaderboard ranks players by level in a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboard creates a leaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) *RedisLeaderboard {
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &RedisLeaderboard{
		client: client,
		key:    key,
	}
}

// Record stores level for the player unless a higher level is already recorded.
func (rl *RedisLeaderboard) Record(ctx context.Context, playerID uuid.UUID, level int) error {
	return rl.client.ZAddGT(ctx, rl.key, redis.Z{Score: float64(level), Member: playerID.String()}).Err()
}

// Top returns up to n standings, highest level first.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]i.Standing, error) {
	if n <= 0 {
		return nil, nil
	}

	members, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]i.Standing, 0, len(members))
	for _, m := range members {
		raw, ok := m.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member %v", m.Member)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing leaderboard member %q: %w", raw, err)
		}
		standings = append(standings, i.Standing{PlayerID: id, Level: int(m.Score)})
	}
	return standings, nil
}

// Count returns the number of ranked players.
func (rl *RedisLeaderboard) Count(ctx context.Context) (int64, error) {
	return rl.client.ZCard(ctx, rl.key).Result()
}
