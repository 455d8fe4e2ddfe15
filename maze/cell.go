package maze

import "fmt"

// Point is a position on the maze grid.
// X runs along the width axis and Y along the height axis.
type Point struct {
	X int `json:"x"` // Column index on the grid
	Y int `json:"y"` // Row index on the grid
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CellOf returns the grid position of the logical cell at column i and row j.
func CellOf(i, j int) Point {
	return Point{X: 2*i + 1, Y: 2*j + 1}
}

// CellKind classifies a grid position for the instantiation layer.
type CellKind int

const (
	Wall  CellKind = iota // Wall is a closed position that receives a wall marker.
	Floor                 // Floor is a carved position that receives nothing.
	Entry                 // Entry is the doorway the player comes in through.
	Exit                  // Exit is a doorway that finishes the maze.
)

// String returns the lower-case name of the kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ExitCorner names a corner of the border ring where an exit doorway is cut.
type ExitCorner int

const (
	TopRight ExitCorner = iota + 1 // TopRight is grid position (width-2, height-1).
	TopLeft                        // TopLeft is grid position (1, height-1).
)

// String returns the camel-case name used by the API.
func (c ExitCorner) String() string {
	switch c {
	case TopRight:
		return "topRight"
	case TopLeft:
		return "topLeft"
	default:
		return fmt.Sprintf("corner(%d)", int(c))
	}
}

// ParseExitCorner parses the name produced by ExitCorner.String.
func ParseExitCorner(s string) (ExitCorner, error) {
	switch s {
	case "topRight":
		return TopRight, nil
	case "topLeft":
		return TopLeft, nil
	default:
		return 0, fmt.Errorf("%w: unknown exit corner %q", ErrInvalidParameters, s)
	}
}

// position returns the grid position of the corner on a grid of the given size.
func (c ExitCorner) position(width, height int) Point {
	if c == TopLeft {
		return Point{X: 1, Y: height - 1}
	}
	return Point{X: width - 2, Y: height - 1}
}
