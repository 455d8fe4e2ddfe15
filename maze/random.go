package maze

import "math/rand"

// Random is the single seeded stream every generation step draws from.
//
// It wraps the math/rand source seeded with the generation seed. The sequence is
// stable for a given seed across platforms running this implementation; it is not
// meant to reproduce other languages' generators.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a stream seeded with seed.
func NewRandom(seed int32) *Random {
	return &Random{r: rand.New(rand.NewSource(int64(seed)))}
}

// Range returns a uniformly distributed integer in [low, high).
// When high <= low it returns low without consuming the stream.
func (r *Random) Range(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.r.Intn(high-low)
}
