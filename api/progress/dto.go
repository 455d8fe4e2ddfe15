// Package progressapi exposes a player's level progression over HTTP.
package progressapi

import (
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/identity"
)

// LevelRequest moves the player to a level.
type LevelRequest struct {
	Level *int `json:"level" binding:"required"`
}

// SeedRequest chooses the seed of the current level. It must be exactly five digits.
type SeedRequest struct {
	Seed string `json:"seed" binding:"required"`
}

// ProgressResponse reports where the player stands.
type ProgressResponse struct {
	Level       int                   `json:"level"`
	Seed        *int32                `json:"seed,omitempty"`
	HasProgress bool                  `json:"has_progress"`
	Maze        *mazeapi.MazeResponse `json:"maze,omitempty"`
}

// LeaderboardResponse is a page of the leaderboard.
type LeaderboardResponse struct {
	Total     int64              `json:"total"`
	Standings []StandingResponse `json:"standings"`
}

// StandingResponse is one leaderboard row.
type StandingResponse struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Level    int    `json:"level"`
}

func newProgressResponse(p *identity.Player) *ProgressResponse {
	resp := &ProgressResponse{
		Level:       p.Level,
		HasProgress: p.HasProgress(),
	}
	if p.HasSeed {
		seed := p.Seed
		resp.Seed = &seed
	}
	return resp
}
