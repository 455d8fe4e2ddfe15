package identity

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "v9#Lq!pT2z@Wm8rK"

// fixedSource returns low+offset for every draw, clamped to the range.
type fixedSource struct {
	offset int
	draws  int
}

func (f *fixedSource) Range(low, high int) int {
	f.draws++
	if low+f.offset >= high {
		return high - 1
	}
	return low + f.offset
}

func TestNewPlayer(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		p, err := NewPlayer(PlayerConfig{ID: id, Username: "maze_runner", PlainPassword: strongPassword})
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "maze_runner", p.Username)
		assert.NotEqual(t, strongPassword, p.PasswordHash)
		assert.Zero(t, p.Level)
		assert.False(t, p.HasSeed)
		assert.False(t, p.HasProgress())
		assert.True(t, p.VerifyPassword(strongPassword))
		assert.False(t, p.VerifyPassword("wrong"))
	})

	cases := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "abcdefghijklmnopqrstu", strongPassword, ErrUsernameTooLong},
		{"bad characters", "maze-runner", strongPassword, ErrInvalidUsername},
		{"weak password", "maze_runner", "password", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPlayer(PlayerConfig{ID: id, Username: tc.username, PlainPassword: tc.password})
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDimensions(t *testing.T) {
	c, r := Dimensions(0)
	assert.Equal(t, 10, c)
	assert.Equal(t, 10, r)

	c, r = Dimensions(7)
	assert.Equal(t, 17, c)
	assert.Equal(t, 17, r)
}

func TestNextSeedRange(t *testing.T) {
	rng := maze.NewRandom(1)
	for i := 0; i < 1000; i++ {
		seed := NextSeed(rng)
		assert.GreaterOrEqual(t, seed, int32(MinSeed))
		assert.Less(t, seed, int32(MaxSeed))
	}
}

func TestParseCustomSeed(t *testing.T) {
	seed, err := ParseCustomSeed("12345")
	require.NoError(t, err)
	assert.Equal(t, int32(12345), seed)

	seed, err = ParseCustomSeed("99999")
	require.NoError(t, err)
	assert.Equal(t, int32(99999), seed)

	for _, raw := range []string{"", "1234", "123456", "01234", "12a45", "-1234", " 1234", "１２３４５"} {
		_, err := ParseCustomSeed(raw)
		assert.ErrorIs(t, err, ErrInvalidSeed, "raw %q", raw)
	}
}

func TestProgression(t *testing.T) {
	p := &Player{ID: uuid.New(), Username: "runner"}
	src := &fixedSource{offset: 2345}

	assert.True(t, p.EnsureSeed(src))
	assert.Equal(t, int32(12345), p.Seed)
	assert.False(t, p.EnsureSeed(src), "existing seed must be kept")
	assert.Equal(t, 1, src.draws)

	cfg := p.MazeConfig()
	assert.Equal(t, maze.Config{
		Columns:     10,
		Rows:        10,
		Seed:        12345,
		ExitCorners: []maze.ExitCorner{maze.TopRight, maze.TopLeft},
	}, cfg)

	src.offset = 500
	require.NoError(t, p.CompleteLevel(src, 190))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, int32(10500), p.Seed)
	assert.True(t, p.HasProgress())
	assert.Equal(t, 11, p.MazeConfig().Columns)

	require.NoError(t, p.SetLevel(5, 190))
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, int32(10500), p.Seed)
	assert.ErrorIs(t, p.SetLevel(-1, 190), ErrInvalidLevel)
	assert.Equal(t, 5, p.Level)

	p.UseSeed(54321)
	assert.Equal(t, int32(54321), p.Seed)
	assert.True(t, p.HasSeed)

	p.StartOver()
	assert.Zero(t, p.Level)
	assert.False(t, p.HasSeed)
	assert.False(t, p.HasProgress())
}

func TestMazeConfigGenerates(t *testing.T) {
	p := &Player{Level: 2}
	p.UseSeed(31337)

	d, err := maze.Generate(p.MazeConfig())
	require.NoError(t, err)
	assert.Equal(t, 25, d.Width())
	assert.Len(t, d.Exits(), 2)
}

func TestLevelLimit(t *testing.T) {
	assert.Equal(t, 190, MaxLevel(200))
	assert.Equal(t, -1, MaxLevel(9))

	p := &Player{}
	p.UseSeed(12345)

	require.NoError(t, p.SetLevel(190, MaxLevel(200)))
	assert.ErrorIs(t, p.SetLevel(191, MaxLevel(200)), ErrInvalidLevel)
	assert.Equal(t, 190, p.Level)

	src := &fixedSource{offset: 1}
	assert.ErrorIs(t, p.CompleteLevel(src, MaxLevel(200)), ErrFinalLevel)
	assert.Equal(t, 190, p.Level)
	assert.Equal(t, int32(12345), p.Seed)
	assert.Zero(t, src.draws, "a refused completion must not draw a seed")

	columns, rows := Dimensions(p.Level)
	assert.Equal(t, 200, columns)
	assert.Equal(t, 200, rows)

	require.NoError(t, p.SetLevel(189, MaxLevel(200)))
	require.NoError(t, p.CompleteLevel(src, MaxLevel(200)))
	assert.Equal(t, 190, p.Level)
}
