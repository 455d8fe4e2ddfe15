// Package mazeapi serves generated mazes over HTTP.
package mazeapi

import (
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// MazeQuery holds the query parameters of a maze request.
type MazeQuery struct {
	Columns int      `form:"columns"`
	Rows    int      `form:"rows"`
	Seed    *int32   `form:"seed"`   // Drawn from the 5 digit range when absent
	Exits   string   `form:"exits"`  // Comma separated corner names; empty means topRight
	Margin  *float64 `form:"margin"` // Floor padding, finite and >= 0; defaults to maze.DefaultFloorMargin
	Plan    bool     `form:"plan"`   // Include the full build plan
}

// Corners parses the exits parameter.
func (q MazeQuery) Corners() ([]maze.ExitCorner, error) {
	if strings.TrimSpace(q.Exits) == "" {
		return nil, nil
	}

	var corners []maze.ExitCorner
	for _, name := range strings.Split(q.Exits, ",") {
		c, err := maze.ParseExitCorner(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		corners = append(corners, c)
	}
	return corners, nil
}

// MazeResponse describes one maze to a renderer.
type MazeResponse struct {
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Columns        int             `json:"columns"`
	Rows           int             `json:"rows"`
	Seed           int32           `json:"seed"`
	Entry          maze.Point      `json:"entry"`
	Exits          []maze.Point    `json:"exits"`
	Grid           []string        `json:"grid"` // Top row first; '#' wall, ' ' floor, 'E' entry, 'X' exit
	Floor          maze.Footprint  `json:"floor"`
	SolutionLength int             `json:"solution_length"`
	Plan           *maze.BuildPlan `json:"plan,omitempty"`
}

// NewMazeResponse builds the response for d.
func NewMazeResponse(d *maze.Description, margin float64, withPlan bool) *MazeResponse {
	resp := &MazeResponse{
		Width:          d.Width(),
		Height:         d.Height(),
		Columns:        d.Columns(),
		Rows:           d.Rows(),
		Seed:           d.Seed(),
		Entry:          d.Entry(),
		Exits:          d.Exits(),
		Grid:           d.Lines(),
		Floor:          d.Floor(margin),
		SolutionLength: len(d.Solution()),
	}
	if withPlan {
		plan := d.Plan(margin)
		resp.Plan = &plan
	}
	return resp
}
