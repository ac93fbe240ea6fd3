package shooter

// SimpleRNG is a deterministic pseudo-random number generator.
// Its whole state is one word, so a snapshot can carry it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	// 64-bit LCG (Knuth MMIX constants); the high bits are the good ones
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Range returns a random int in [lo, hi], both inclusive.
func (r *SimpleRNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Sign returns +1 or -1 with equal probability.
func (r *SimpleRNG) Sign() float64 {
	if r.Next()>>63 == 1 {
		return 1
	}
	return -1
}
