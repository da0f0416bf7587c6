package contagiongo

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is a single logical random source supplying uniform-[0,1) samples
// and exponential draws, as spec.md section 5 requires. It wraps a seedable
// *rand.Rand so a caller can inject a seed for reproducibility. NewSource
// always takes an explicit seed; the engines fall back to NewSource(1) when
// given a nil Source, and the contagion CLI's -seed flag defaults to the
// current Unix time, as the teacher CLI does (bin/contagion/main.go).
//
// Exponential draws are produced with gonum.org/v1/gonum/stat/distuv, not
// the teacher's own github.com/kentwait/randomvariate: that package only
// exposes the discrete-time Poisson/Binomial/Multinomial draws its
// within-host genetics code needs and has no continuous-time exponential
// waiting-time primitive, which is the one draw the correctness argument in
// spec.md section 4.4 depends on.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded with the given seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a sample drawn uniformly from [0,1).
func (s *Source) Uniform() float64 {
	return s.rng.Float64()
}

// Intn returns a uniform sample from [0,n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Exponential draws a waiting time from Exponential(rate). rate must be
// strictly positive; callers that may see a zero rate (e.g. tau=0, meaning
// "no transmission ever occurs") must special-case it themselves rather
// than call this, since Exponential(0) would otherwise imply an infinite
// expected wait sampled as +Inf.
func (s *Source) Exponential(rate float64) float64 {
	dist := distuv.Exponential{Rate: rate, Src: s.rng}
	return dist.Rand()
}
