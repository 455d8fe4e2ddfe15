/*
Package maze generates perfect mazes on a rectangular grid from an integer seed.

A maze of C columns and R rows is carved on a (2C+1) x (2R+1) grid. Logical cells
sit at odd coordinates, the positions between them are connectors, and the outer
ring is solid wall except for the entry and exit doorways.

Generation is a randomized depth-first traversal ("recursive backtracker") driven
by one seeded stream, so a Config always produces the same Description. The
Description is immutable and carries everything an instantiation layer needs:
which positions are walls, where the doorways are, and the floor footprint.
*/
package maze

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Description is the result of one generation call. It is never modified after
// Generate returns it.
type Description struct {
	width   int
	height  int
	columns int
	rows    int
	seed    int32
	entry   Point
	exits   []Point
	open    [][]bool // indexed [x][y]
}

// Width returns the grid size along X (2*columns+1).
func (d *Description) Width() int { return d.width }

// Height returns the grid size along Y (2*rows+1).
func (d *Description) Height() int { return d.height }

// Columns returns the number of logical cells along X.
func (d *Description) Columns() int { return d.columns }

// Rows returns the number of logical cells along Y.
func (d *Description) Rows() int { return d.rows }

// Seed returns the seed the maze was generated from.
func (d *Description) Seed() int32 { return d.seed }

// Entry returns the entry doorway.
func (d *Description) Entry() Point { return d.entry }

// Exits returns a copy of the exit doorways, TopRight first when present.
func (d *Description) Exits() []Point {
	exits := make([]Point, len(d.exits))
	copy(exits, d.exits)
	return exits
}

// inBound reports whether p lies on the grid.
func (d *Description) inBound(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < d.width && p.Y < d.height
}

// IsOpen reports whether p is carved floor or a doorway.
// Positions off the grid are closed.
func (d *Description) IsOpen(p Point) bool {
	return d.inBound(p) && d.open[p.X][p.Y]
}

// Kind classifies p the way the instantiation layer places markers.
func (d *Description) Kind(p Point) CellKind {
	if p == d.entry {
		return Entry
	}
	for _, e := range d.exits {
		if p == e {
			return Exit
		}
	}
	if d.IsOpen(p) {
		return Floor
	}
	return Wall
}

// OpenCells returns every open position, doorways included.
func (d *Description) OpenCells() mapset.Set[Point] {
	cells := mapset.New[Point]()
	for x := 0; x < d.width; x++ {
		for y := 0; y < d.height; y++ {
			if d.open[x][y] {
				cells.Put(Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Walls returns every closed position in x-major order.
func (d *Description) Walls() []Point {
	var walls []Point
	for x := 0; x < d.width; x++ {
		for y := 0; y < d.height; y++ {
			if !d.open[x][y] {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}

// Lines renders the grid as text, one string per row, top row (largest Y) first.
// '#' is wall, ' ' is floor, 'E' is the entry and 'X' an exit.
func (d *Description) Lines() []string {
	lines := make([]string, 0, d.height)
	for y := d.height - 1; y >= 0; y-- {
		var row strings.Builder
		for x := 0; x < d.width; x++ {
			switch d.Kind(Point{X: x, Y: y}) {
			case Entry:
				row.WriteByte('E')
			case Exit:
				row.WriteByte('X')
			case Floor:
				row.WriteByte(' ')
			default:
				row.WriteByte('#')
			}
		}
		lines = append(lines, row.String())
	}
	return lines
}

// String provides a textual representation of the maze.
func (d *Description) String() string {
	return strings.Join(d.Lines(), "\n") + "\n"
}
