package identity

import (
	"fmt"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	// BaseDimension is the maze size, in logical cells per side, of level 0.
	BaseDimension = 10

	// MinSeed and MaxSeed bound the 5 digit seeds handed out between levels.
	MinSeed = 10000
	MaxSeed = 100000

	customSeedLength = 5
)

// SeedSource draws integers in [low, high). maze.Random satisfies it.
type SeedSource interface {
	Range(low, high int) int
}

// Dimensions returns the number of columns and rows of the maze for level.
func Dimensions(level int) (columns, rows int) {
	return BaseDimension + level, BaseDimension + level
}

// MaxLevel returns the last level whose maze fits within maxDimension cells per side.
// It is negative when even level 0 does not fit.
func MaxLevel(maxDimension int) int {
	return maxDimension - BaseDimension
}

// NextSeed draws a fresh 5 digit seed.
func NextSeed(r SeedSource) int32 {
	return int32(r.Range(MinSeed, MaxSeed))
}

// ParseCustomSeed accepts exactly five decimal digits without a leading zero.
func ParseCustomSeed(raw string) (int32, error) {
	if len(raw) != customSeedLength {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidSeed, raw)
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: got %q", ErrInvalidSeed, raw)
		}
	}

	seed, err := strconv.Atoi(raw)
	if err != nil || seed < MinSeed {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidSeed, raw)
	}
	return int32(seed), nil
}

// HasProgress reports whether the player has completed at least one level.
func (p *Player) HasProgress() bool {
	return p.Level > 0
}

// EnsureSeed draws a seed if the player has none. It reports whether one was drawn.
func (p *Player) EnsureSeed(r SeedSource) bool {
	if p.HasSeed {
		return false
	}
	p.Seed = NextSeed(r)
	p.HasSeed = true
	return true
}

// MazeConfig returns the generation parameters of the player's current level.
// Levels use the two exit layout. The player must have a seed.
func (p *Player) MazeConfig() maze.Config {
	columns, rows := Dimensions(p.Level)
	return maze.Config{
		Columns:     columns,
		Rows:        rows,
		Seed:        p.Seed,
		ExitCorners: []maze.ExitCorner{maze.TopRight, maze.TopLeft},
	}
}

// CompleteLevel moves the player to the next level with a fresh seed.
// A player already at maxLevel stays where they are and gets ErrFinalLevel.
func (p *Player) CompleteLevel(r SeedSource, maxLevel int) error {
	if p.Level >= maxLevel {
		return fmt.Errorf("%w: level %d", ErrFinalLevel, p.Level)
	}
	p.Level++
	p.Seed = NextSeed(r)
	p.HasSeed = true
	return nil
}

// StartOver resets the player to level 0 and forgets the seed.
func (p *Player) StartOver() {
	p.Level = 0
	p.Seed = 0
	p.HasSeed = false
}

// SetLevel jumps to level, keeping the current seed. level must lie in [0, maxLevel].
func (p *Player) SetLevel(level, maxLevel int) error {
	if level < 0 || level > maxLevel {
		return fmt.Errorf("%w: got %d, want 0..%d", ErrInvalidLevel, level, maxLevel)
	}
	p.Level = level
	return nil
}

// UseSeed replaces the seed of the current level.
func (p *Player) UseSeed(seed int32) {
	p.Seed = seed
	p.HasSeed = true
}
