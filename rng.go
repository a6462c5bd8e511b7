package flatprm

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

/* Flat-state samplers over the canonical unit cube. */

// RNG yields flat-state samples in the canonical unit cube [0,1]^N. Samplers
// advance internal state on every call; the planner's determinism guarantee
// rests on the sequence being reproducible.
type RNG interface {
	Next() []float64
}

// Halton is a deterministic quasi-random sequence using one prime base per
// dimension. The low-discrepancy spread covers the sample space far more
// evenly than pseudo-random draws at roadmap sizes.
type Halton struct {
	dim   int
	index uint64
	bases []uint64
}

// NewHalton returns a Halton sequence of the given dimension. The first few
// members are skipped: they cluster near the origin for large prime bases.
func NewHalton(dim int) *Halton {
	h := &Halton{dim: dim, index: 0, bases: firstPrimes(dim)}
	for i := 0; i < 16; i++ {
		h.Next()
	}
	return h
}

// Next implements the RNG interface.
func (h *Halton) Next() []float64 {
	h.index++
	out := make([]float64, h.dim)
	for d := 0; d < h.dim; d++ {
		b := h.bases[d]
		f := 1.0
		inv := 0.0
		for i := h.index; i > 0; i /= b {
			f /= float64(b)
			inv += f * float64(i%b)
		}
		out[d] = inv
	}
	return out
}

func firstPrimes(n int) []uint64 {
	primes := make([]uint64, 0, n)
	for c := uint64(2); len(primes) < n; c++ {
		isPrime := true
		for _, p := range primes {
			if p*p > c {
				break
			}
			if c%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, c)
		}
	}
	return primes
}

// UniformRNG draws independent per-axis uniforms from a seeded source. It is
// deterministic for a given seed, though without the Halton sequence's
// low-discrepancy coverage.
type UniformRNG struct {
	dim  int
	dist distuv.Uniform
}

// NewUniformRNG returns a seeded pseudo-random sampler of the given dimension.
func NewUniformRNG(dim int, seed uint64) *UniformRNG {
	return &UniformRNG{
		dim:  dim,
		dist: distuv.Uniform{Min: 0, Max: 1, Src: rand.NewSource(seed)},
	}
}

// Next implements the RNG interface.
func (u *UniformRNG) Next() []float64 {
	out := make([]float64, u.dim)
	for d := range out {
		out[d] = u.dist.Rand()
	}
	return out
}
