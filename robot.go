package flatprm

import "fmt"

/* The robot capability consumed by the validator and the planner. */

// Robot exposes the kinematic constants, sample-space scaling and batched
// forward-kinematics collision predicates of a differentially flat robot. The
// collision predicates are the planner's hot path: implementations must be
// pure with respect to their inputs so plans may run concurrently.
type Robot interface {
	Name() string
	// Dimension is the number of degrees of freedom; FlatDimension the size of
	// the flat output. For the manipulators in this system they coincide.
	Dimension() int
	FlatDimension() int
	FlatOrder() int
	// Resolution is the default sampling density per unit of time or distance.
	Resolution() int
	// ScaleConfiguration rescales, in place, a configuration drawn from the
	// canonical unit cube into the robot's joint ranges. DescaleConfiguration
	// is its inverse.
	ScaleConfiguration(q []float64)
	DescaleConfiguration(q []float64)
	// ScaleFlatState rescales, in place, a packed flat state drawn from the
	// canonical unit cube into joint ranges (configuration segment) and
	// velocity ranges (derivative segments).
	ScaleFlatState(s []float64)
	// FKCC reports whether all Rake configurations in the block are free of
	// collision with the environment. FKCCAttach additionally accounts for
	// bodies attached to the robot.
	FKCC(env *Environment, block Block) bool
	FKCCAttach(env *Environment, block Block) bool
}

// FlatStateDimension returns flat_dimension × flat_order, the size of a packed
// flat state.
func FlatStateDimension(r Robot) int {
	return r.FlatDimension() * r.FlatOrder()
}

// FlatStateToVecArray splits a packed flat state into per-derivative-order
// vectors: element 0 is the flat output, element 1 its first derivative, etc.
func FlatStateToVecArray(r Robot, s []float64) [][]float64 {
	d := r.FlatDimension()
	if len(s) != d*r.FlatOrder() {
		panic(fmt.Errorf("flat state of %s must hold %d scalars, got %d", r.Name(), d*r.FlatOrder(), len(s)))
	}
	out := make([][]float64, r.FlatOrder())
	for i := range out {
		out[i] = s[i*d : (i+1)*d]
	}
	return out
}
