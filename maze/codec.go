package maze

import (
	"encoding/json"
	"fmt"
)

// record is the wire form of a Description. Grid rows are listed bottom row
// (y = 0) first, one character per position: '#' closed, '.' open.
type record struct {
	Columns int      `json:"columns"`
	Rows    int      `json:"rows"`
	Seed    int32    `json:"seed"`
	Entry   Point    `json:"entry"`
	Exits   []Point  `json:"exits"`
	Grid    []string `json:"grid"`
}

// MarshalJSON encodes the description.
func (d *Description) MarshalJSON() ([]byte, error) {
	grid := make([]string, d.height)
	row := make([]byte, d.width)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			row[x] = '#'
			if d.open[x][y] {
				row[x] = '.'
			}
		}
		grid[y] = string(row)
	}

	return json.Marshal(record{
		Columns: d.columns,
		Rows:    d.rows,
		Seed:    d.seed,
		Entry:   d.entry,
		Exits:   d.exits,
		Grid:    grid,
	})
}

// UnmarshalJSON decodes a description produced by MarshalJSON.
// It is meant for filling a zero Description; the shape is checked before any field is set.
func (d *Description) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	cfg := Config{Columns: r.Columns, Rows: r.Rows, Seed: r.Seed}
	if err := cfg.Validate(); err != nil {
		return err
	}

	width, height := r.Columns*2+1, r.Rows*2+1
	if len(r.Grid) != height {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidParameters, len(r.Grid), height)
	}
	if len(r.Exits) < 1 || len(r.Exits) > 2 {
		return fmt.Errorf("%w: %d exits", ErrInvalidParameters, len(r.Exits))
	}

	open := make([][]bool, width)
	for x := range open {
		open[x] = make([]bool, height)
	}
	for y, line := range r.Grid {
		if len(line) != width {
			return fmt.Errorf("%w: grid row %d has %d positions, want %d", ErrInvalidParameters, y, len(line), width)
		}
		for x := 0; x < width; x++ {
			switch line[x] {
			case '.':
				open[x][y] = true
			case '#':
			default:
				return fmt.Errorf("%w: unexpected %q at %v", ErrInvalidParameters, line[x], Point{X: x, Y: y})
			}
		}
	}

	*d = Description{
		width:   width,
		height:  height,
		columns: r.Columns,
		rows:    r.Rows,
		seed:    r.Seed,
		entry:   r.Entry,
		exits:   append([]Point(nil), r.Exits...),
		open:    open,
	}
	return nil
}
