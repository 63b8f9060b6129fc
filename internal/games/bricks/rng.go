package bricks

// SimpleRNG is a deterministic LCG so a seed fully decides a run.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates an RNG from seed. A zero seed is replaced by 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Sign returns -1 or 1 with equal probability.
// The high bit is used since the low bits of an LCG have short periods.
func (r *SimpleRNG) Sign() float64 {
	if r.Next()>>63 == 0 {
		return -1
	}
	return 1
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}
