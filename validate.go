package flatprm

import (
	"math"
)

/* Rake-parallel motion validation. */

// Validator decides whether motions are collision-free by sampling them at a
// grid of points and delegating to the robot's batched collision predicates.
// It is pure: it may be called concurrently on disjoint arguments.
type Validator struct {
	robot Robot
}

// NewValidator returns a validator for the given robot.
func NewValidator(robot Robot) Validator {
	return Validator{robot: robot}
}

func (v Validator) predicate(env *Environment) func(*Environment, Block) bool {
	if env.HasAttachments() {
		return v.robot.FKCCAttach
	}
	return v.robot.FKCC
}

// batches returns the number of rake-wide batches needed to cover the given
// extent at the robot's sampling density.
func (v Validator) batches(extent float64) int {
	n := int(math.Ceil(extent / Rake * float64(v.robot.Resolution())))
	if n < 1 {
		n = 1
	}
	return n
}

// ValidateVector checks the straight-line configuration-space motion starting
// at start and sweeping along vector, whose length is distance.
func (v Validator) ValidateVector(env *Environment, start, vector []float64, distance float64) bool {
	dim := v.robot.Dimension()
	fkcc := v.predicate(env)

	block := make(Block, dim)
	for i := 0; i < dim; i++ {
		for k := 0; k < Rake; k++ {
			block[i][k] = start[i] + vector[i]*rakePercents[k]
		}
	}

	n := v.batches(distance)
	valid := fkcc(env, block)
	if !valid || n == 1 {
		return valid
	}

	for i := 1; i < n; i++ {
		for j := 0; j < dim; j++ {
			step := vector[j] / float64(Rake*n)
			block[j] = shiftRake(block[j], -step)
		}
		if !fkcc(env, block) {
			return false
		}
	}
	return true
}

// ValidateMotion checks the straight-line motion between two configurations.
func (v Validator) ValidateMotion(env *Environment, start, goal []float64) bool {
	vector := clone(goal)
	for i := range vector {
		vector[i] -= start[i]
	}
	return v.ValidateVector(env, start, vector, Norm(vector))
}

// ValidatePoly checks the trajectory traj over t ∈ [0, T]. The grid covers
// Rake·n distinct time points; collision-freedom between samples is not
// guaranteed and is controlled by the robot's resolution.
func (v Validator) ValidatePoly(env *Environment, traj Polynomial, T float64) bool {
	dim := v.robot.FlatDimension()
	fkcc := v.predicate(env)

	ts := scaleRake(T, rakePercents)
	block := make(Block, dim)
	for j := 0; j < dim; j++ {
		block[j] = traj.EvalRake(j, ts)
	}

	n := v.batches(T)
	valid := fkcc(env, block)
	if !valid || n == 1 {
		return valid
	}

	// Each subsequent batch shifts the whole grid back by one backstep, so the
	// union of batches tiles [0, T] at the target density.
	backstep := T / float64(Rake*n)
	for i := 1; i < n; i++ {
		shifted := shiftRake(ts, -float64(i)*backstep)
		for j := 0; j < dim; j++ {
			block[j] = traj.EvalRake(j, shifted)
		}
		if !fkcc(env, block) {
			return false
		}
	}
	return true
}

// ValidatePolyMotion steers between two packed flat states over horizon T and
// validates the resulting spline. It panics on a non-positive horizon, which
// is a programmer error at every call site.
func (v Validator) ValidatePolyMotion(env *Environment, start, goal []float64, T float64) bool {
	s := FlatStateToVecArray(v.robot, start)
	g := FlatStateToVecArray(v.robot, goal)
	traj, err := CubicSteering(s[0], s[1], g[0], g[1], T)
	if err != nil {
		panic(err)
	}
	return v.ValidatePoly(env, traj, T)
}
