package meadow

import "math"

// Rand is a deterministic pseudo-random number stream. It implements the
// Mulberry32 generator: a 32-bit state stepped once per draw, producing an
// identical sequence for an identical seed on every platform and run.
//
// All derived draws (ranges, picks, shuffles, Gaussians, geometric samples)
// are expressed purely in terms of Next, so determinism carries through
// every method.
type Rand struct {
	state uint32
	seed  uint32
}

// NewRand creates a generator from a 64-bit seed. The high and low halves
// are folded together so seeds differing only in their upper bits still
// produce distinct sequences.
func NewRand(seed int64) *Rand {
	s := foldSeed(seed)
	return &Rand{state: s, seed: s}
}

// foldSeed reduces a 64-bit seed to the generator's 32-bit state.
func foldSeed(seed int64) uint32 {
	u := uint64(seed)
	return uint32(u>>32) ^ uint32(u)
}

// Reset restores the generator to its initial seed.
func (r *Rand) Reset() {
	r.state = r.seed
}

// nextUint32 advances the Mulberry32 state and returns the raw draw.
func (r *Rand) nextUint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	return float64(r.nextUint32()) / 4294967296.0
}

// Fork derives an independent child generator, consuming exactly one draw
// from the parent. The child's future sequence never influences the
// parent's beyond that single draw.
func (r *Rand) Fork() *Rand {
	s := r.nextUint32()
	return &Rand{state: s, seed: s}
}

// Float returns a value in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// IntN returns an integer in [0, n). Returns 0 when n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}

// IntBetween returns an integer in [min, max], inclusive on both ends.
func (r *Rand) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(r.Next()*float64(max-min+1))
}

// Bool returns true with probability 0.5.
func (r *Rand) Bool() bool {
	return r.Next() < 0.5
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Next() < p
}

// Sign returns +1 or -1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.Next() < 0.5 {
		return -1
	}
	return 1
}

// WeightedIndex picks an index with probability proportional to its weight,
// rolling once against the cumulative total. Entries with non-positive
// weights are never picked. Returns -1 when the list is empty or the total
// weight is not positive; no draw is consumed in that case.
func (r *Rand) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	roll := r.Next() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return i
		}
	}
	// Accumulated rounding can leave the roll at exactly the total. Fall
	// back to the last pickable entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// PickN returns k distinct indices in [0, n), in selection order, using a
// partial Fisher-Yates shuffle. k is clamped to n.
func (r *Rand) PickN(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// Shuffle randomizes the order of n elements using the provided swap
// callback, Fisher-Yates style.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}

// Gaussian returns a normally distributed value with the given mean and
// standard deviation via the Box-Muller transform. It always consumes
// exactly two draws so downstream sequences stay aligned.
func (r *Rand) Gaussian(mean, stddev float64) float64 {
	u1 := r.Next()
	u2 := r.Next()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stddev
}

// Biased returns a value in [min, max) skewed by raising the uniform draw
// to the given power: exponents above 1 cluster toward min, below 1 toward
// max, and exactly 1 is uniform.
func (r *Rand) Biased(min, max, exponent float64) float64 {
	return min + math.Pow(r.Next(), exponent)*(max-min)
}

// InDisk returns a point uniformly distributed inside a disk of the given
// radius. The radial distance uses the square root of a uniform draw; the
// raw draw would cluster points at the center.
func (r *Rand) InDisk(radius float64) (x, y float64) {
	ang := r.Next() * 2 * math.Pi
	rad := radius * math.Sqrt(r.Next())
	return math.Cos(ang) * rad, math.Sin(ang) * rad
}

// OnCircle returns a point uniformly distributed on the circumference of a
// circle of the given radius.
func (r *Rand) OnCircle(radius float64) (x, y float64) {
	ang := r.Next() * 2 * math.Pi
	return math.Cos(ang) * radius, math.Sin(ang) * radius
}
