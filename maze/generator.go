package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when a Config cannot describe a maze.
var ErrInvalidParameters = errors.New("invalid maze parameters")

var (
	// steps are the candidate moves from a logical cell, each skipping the connector.
	// Order is north, east, south, west before shuffling.
	steps = [4]Point{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

	// entryPos is fixed just outside the first logical cell on the bottom border.
	entryPos = Point{X: 1, Y: 0}

	startPos = Point{X: 1, Y: 1}
)

// Config holds the parameters of one generation call.
//
// Exits are cut once per distinct grid position: on a one column maze TopRight and
// TopLeft name the same doorway, so the Description reports a single exit.
type Config struct {
	Columns     int          // Number of logical cells along the width
	Rows        int          // Number of logical cells along the height
	Seed        int32        // Seed of the random stream
	ExitCorners []ExitCorner // Corners that receive an exit; empty means TopRight only
}

// Validate reports whether the config describes a maze.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidParameters, c.Columns, c.Rows)
	}
	for _, corner := range c.ExitCorners {
		if corner != TopRight && corner != TopLeft {
			return fmt.Errorf("%w: unknown exit corner %d", ErrInvalidParameters, int(corner))
		}
	}
	return nil
}

// Corners returns the configured exit corners without duplicates, TopRight first.
func (c Config) Corners() []ExitCorner {
	if len(c.ExitCorners) == 0 {
		return []ExitCorner{TopRight}
	}

	var right, left bool
	for _, corner := range c.ExitCorners {
		switch corner {
		case TopRight:
			right = true
		case TopLeft:
			left = true
		}
	}

	corners := make([]ExitCorner, 0, 2)
	if right {
		corners = append(corners, TopRight)
	}
	if left {
		corners = append(corners, TopLeft)
	}
	return corners
}

// frame is one pending cell of the depth-first carve.
type frame struct {
	cell Point
	dirs [4]Point
	next int
}

// carver owns the grid while a maze is being generated.
type carver struct {
	width  int
	height int
	open   [][]bool
	rng    *Random
}

// Generate carves a perfect maze for cfg with a randomized depth-first traversal.
//
// The same Config always yields the same Description. The entry and exit doorways
// are cut through the border ring after the traversal, whether or not it reached them.
func Generate(cfg Config) (*Description, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &carver{
		width:  cfg.Columns*2 + 1,
		height: cfg.Rows*2 + 1,
		rng:    NewRandom(cfg.Seed),
	}
	c.open = make([][]bool, c.width)
	for x := range c.open {
		c.open[x] = make([]bool, c.height)
	}

	c.carve(startPos)

	c.open[entryPos.X][entryPos.Y] = true
	corners := cfg.Corners()
	exits := make([]Point, 0, len(corners))
	for _, corner := range corners {
		p := corner.position(c.width, c.height)
		// The carve never opens the border, so an open position is a repeated doorway.
		if c.open[p.X][p.Y] {
			continue
		}
		c.open[p.X][p.Y] = true
		exits = append(exits, p)
	}

	return &Description{
		width:   c.width,
		height:  c.height,
		columns: cfg.Columns,
		rows:    cfg.Rows,
		seed:    cfg.Seed,
		entry:   entryPos,
		exits:   exits,
		open:    c.open,
	}, nil
}

// carve runs the backtracker from start using an explicit stack of frames.
// Each frame draws its shuffle when it is pushed, which consumes the stream in the
// same order as the recursive formulation.
func (c *carver) carve(start Point) {
	c.open[start.X][start.Y] = true
	stack := []*frame{c.enter(start)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		n := top.cell.Add(d)
		if !c.inBounds(n) || c.open[n.X][n.Y] {
			continue
		}

		c.open[top.cell.X+d.X/2][top.cell.Y+d.Y/2] = true
		c.open[n.X][n.Y] = true
		stack = append(stack, c.enter(n))
	}
}

// enter builds the frame for cell with a freshly shuffled direction list.
func (c *carver) enter(cell Point) *frame {
	f := &frame{cell: cell, dirs: steps}
	shuffle(f.dirs[:], c.rng)
	return f
}

// inBounds reports whether p lies strictly inside the border ring.
func (c *carver) inBounds(p Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < c.width-1 && p.Y < c.height-1
}

// shuffle permutes dirs in place: for each i it swaps i with a draw from [0, i].
func shuffle(dirs []Point, rng *Random) {
	for i := range dirs {
		r := rng.Range(0, i+1)
		dirs[i], dirs[r] = dirs[r], dirs[i]
	}
}
