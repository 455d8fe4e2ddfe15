package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionFloor(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 10, Rows: 10, Seed: 12345})

	floor := d.Floor(DefaultFloorMargin)
	assert.Equal(t, Vector3{X: 31, Y: 31, Z: 1}, floor.Scale)
	assert.Equal(t, Vector3{X: 10, Y: -0.5, Z: 10}, floor.Position)
	assert.Equal(t, 90.0, floor.RotationX)

	d = mustGenerate(t, Config{Columns: 4, Rows: 2, Seed: 1})
	floor = d.Floor(0)
	assert.Equal(t, Vector3{X: 9, Y: 5, Z: 1}, floor.Scale)
	assert.Equal(t, Vector3{X: 4, Y: -0.5, Z: 2}, floor.Position)
}

func TestDescriptionPlan(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 6, Rows: 4, Seed: 8, ExitCorners: []ExitCorner{TopRight, TopLeft}})

	plan := d.Plan(DefaultFloorMargin)
	assert.Equal(t, d.Entry(), plan.Entry)
	assert.Equal(t, d.Exits(), plan.Exits)
	assert.Equal(t, d.Floor(DefaultFloorMargin), plan.Floor)
	assert.Equal(t, d.Width()*d.Height(), len(plan.Walls)+d.OpenCells().Size())

	for _, w := range plan.Walls {
		assert.Equal(t, Wall, d.Kind(w))
	}
	for i := 1; i < len(plan.Walls); i++ {
		prev, cur := plan.Walls[i-1], plan.Walls[i]
		assert.True(t, prev.X < cur.X || (prev.X == cur.X && prev.Y < cur.Y), "walls out of order at %d", i)
	}
}

func TestDescriptionExitsIsACopy(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 3, Rows: 3, Seed: 3})

	exits := d.Exits()
	exits[0] = Point{X: 0, Y: 0}
	assert.Equal(t, Point{X: 5, Y: 6}, d.Exits()[0])
}

func TestDescriptionOffGrid(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 2, Rows: 2, Seed: 3})

	for _, p := range []Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 5, Y: 0}, {X: 0, Y: 5}} {
		assert.False(t, d.inBound(p))
		assert.False(t, d.IsOpen(p))
		assert.Equal(t, Wall, d.Kind(p))
	}
}

func TestDescriptionPath(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 10, Rows: 10, Seed: 4242, ExitCorners: []ExitCorner{TopRight, TopLeft}})

	t.Run("entry to every exit", func(t *testing.T) {
		for _, exit := range d.Exits() {
			path := d.Path(d.Entry(), exit)
			require.NotEmpty(t, path)
			assert.Equal(t, d.Entry(), path[0])
			assert.Equal(t, exit, path[len(path)-1])

			for i := 1; i < len(path); i++ {
				dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
				assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not adjacent", i)
				assert.True(t, d.IsOpen(path[i]))
			}
		}
	})

	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, []Point{{X: 1, Y: 1}}, d.Path(Point{X: 1, Y: 1}, Point{X: 1, Y: 1}))
	})

	t.Run("closed end", func(t *testing.T) {
		assert.Nil(t, d.Path(d.Entry(), Point{X: 0, Y: 0}))
		assert.Nil(t, d.Path(Point{X: 2, Y: 2}, d.Entry()))
	})

	t.Run("solution", func(t *testing.T) {
		assert.Equal(t, d.Path(d.Entry(), d.Exits()[0]), d.Solution())
	})
}

func TestDescriptionString(t *testing.T) {
	d := mustGenerate(t, Config{Columns: 2, Rows: 1, Seed: 0, ExitCorners: []ExitCorner{TopRight, TopLeft}})

	lines := d.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "#X#X#", lines[0])
	assert.Equal(t, "#   #", lines[1])
	assert.Equal(t, "#E###", lines[2])
}

func TestRandomRange(t *testing.T) {
	a, b := NewRandom(12345), NewRandom(12345)
	for i := 0; i < 50; i++ {
		x := a.Range(10000, 100000)
		assert.Equal(t, x, b.Range(10000, 100000))
		assert.GreaterOrEqual(t, x, 10000)
		assert.Less(t, x, 100000)
	}

	assert.Equal(t, 0, a.Range(0, 1))
	assert.Equal(t, 5, a.Range(5, 5))
	assert.Equal(t, 5, a.Range(5, 2))
}

func TestExitCornerNames(t *testing.T) {
	for _, c := range []ExitCorner{TopRight, TopLeft} {
		parsed, err := ParseExitCorner(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseExitCorner("bottomLeft")
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, Point{X: 1, Y: 1}, CellOf(0, 0))
	assert.Equal(t, Point{X: 7, Y: 3}, CellOf(3, 1))
	assert.Equal(t, "floor", Floor.String())
	assert.Equal(t, "(7,3)", CellOf(3, 1).String())
}
