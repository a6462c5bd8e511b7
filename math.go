package flatprm

import (
	"gonum.org/v1/gonum/floats"
)

// Rake is the SIMD lane width: the number of configurations (or time samples)
// evaluated in lock-step by one batched operation. Changing it changes the
// validation sampling grid, so it is part of the planner's static configuration.
const Rake = 8

// RakeVec holds one scalar per SIMD lane.
type RakeVec [Rake]float64

// Block is a rake-wide configuration block: one row per degree of freedom,
// Rake configurations side by side.
type Block []RakeVec

// rakePercents are the fixed sampling percents (k+1)/Rake of one batch.
var rakePercents = func() RakeVec {
	var p RakeVec
	for k := range p {
		p[k] = float64(k+1) / float64(Rake)
	}
	return p
}()

// broadcast fills every lane with the same scalar.
func broadcast(v float64) (b RakeVec) {
	for k := range b {
		b[k] = v
	}
	return
}

// scaleRake returns a*v lane-wise.
func scaleRake(a float64, v RakeVec) (s RakeVec) {
	for k := range s {
		s[k] = a * v[k]
	}
	return
}

// shiftRake returns v+a in every lane.
func shiftRake(v RakeVec, a float64) (s RakeVec) {
	for k := range s {
		s[k] = v[k] + a
	}
	return
}

// Norm returns the L2 norm of a given vector.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Distance returns the L2 distance between two equally sized vectors.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// clone returns an owned copy of v.
func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

// roundUpTo rounds n up to the next multiple of m.
func roundUpTo(n, m int) int {
	if r := n % m; r != 0 {
		return n + m - r
	}
	return n
}
