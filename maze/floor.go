package maze

// DefaultFloorMargin is the padding added around the maze by the floor footprint.
const DefaultFloorMargin = 10

// Vector3 is a position or scale in the renderer's space, Y up.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Footprint is the backing floor rectangle placed under the maze.
// It has no effect on generation.
type Footprint struct {
	Scale     Vector3 `json:"scale"`      // (width+margin, height+margin, 1)
	Position  Vector3 `json:"position"`   // centered under the grid, half a unit below it
	RotationX float64 `json:"rotation_x"` // degrees; lays the quad flat
}

// BuildPlan lists the markers an instantiation layer places for one maze.
type BuildPlan struct {
	Walls []Point   `json:"walls"`
	Entry Point     `json:"entry"`
	Exits []Point   `json:"exits"`
	Floor Footprint `json:"floor"`
}

// Floor computes the floor footprint padded by margin on each axis.
func (d *Description) Floor(margin float64) Footprint {
	w, h := float64(d.width), float64(d.height)
	return Footprint{
		Scale:     Vector3{X: w + margin, Y: h + margin, Z: 1},
		Position:  Vector3{X: w/2 - 0.5, Y: -0.5, Z: h/2 - 0.5},
		RotationX: 90,
	}
}

// Plan returns the build plan for the maze.
func (d *Description) Plan(margin float64) BuildPlan {
	return BuildPlan{
		Walls: d.Walls(),
		Entry: d.entry,
		Exits: d.Exits(),
		Floor: d.Floor(margin),
	}
}
